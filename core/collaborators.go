package core

// This file names the read-only external collaborators the control core
// depends on (§1, §6 of the spec): the RC-frame decoder, the quadrature
// encoder, the PWM timer, and the 50Hz/1Hz tick sources. All of them live
// outside this package; Controller is handed typed views of them at
// construction time rather than reaching for package-level singletons,
// so that Tick stays a pure function of its inputs plus carry state (the
// design note in spec.md §9 calling for the core to be "pure-functional
// over its inputs plus carry").

// EncoderReader reads the quadrature position encoder. EncoderValue is
// monotonic within a single traversal; it may wrap only on very long runs.
type EncoderReader interface {
	EncoderValue() int32
}

// ChannelSource reads RC channel pulse widths in microseconds. A return
// value of 0 means no valid frame has been received for that channel.
type ChannelSource interface {
	Duty(channel int) uint16
}

// TickClock supplies the 1Hz gate and a monotonic millisecond clock used
// only for trace timestamps and diagnostic rate limiting; it never
// influences control decisions.
type TickClock interface {
	Is1Hz() bool
	MonotonicMs() uint32
}

// PWMWriter writes the single per-tick ESC pulse-width command.
type PWMWriter interface {
	WritePWM(value uint16)
}

// WarningLED drives the endpoint/emergency brake indicator.
type WarningLED interface {
	SetWarning(on bool)
}
