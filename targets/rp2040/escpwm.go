//go:build rp2040 || rp2350

package main

import "machine"

// escPin is the single ESC signal output pin for this rig; unlike
// gopper's RP2040PWMDriver, which tracks an arbitrary set of stepper
// pins across all 8 hardware PWM slices, the cablecam only ever drives
// one ESC, so the slice/channel bookkeeping collapses to one pin.
type escPWM struct {
	pin     machine.Pin
	channel uint8
	top     uint32
}

// newEscPWM configures pin for a 50Hz PWM period (the standard RC ESC
// frame rate) using TinyGo's machine.PWM API, the same API
// gopper/targets/rp2040/pwm.go wraps for its stepper slices.
func newEscPWM(pin machine.Pin) (*escPWM, error) {
	pwmGroup := machine.PWM0 // RP2040 pin->slice mapping puts most ESC-friendly pins on slice 0
	const periodNs = 1_000_000_000 / 50

	if err := pwmGroup.Configure(machine.PWMConfig{Period: periodNs}); err != nil {
		return nil, err
	}
	channel, err := pwmGroup.Channel(pin)
	if err != nil {
		return nil, err
	}

	return &escPWM{pin: pin, channel: channel, top: pwmGroup.Top()}, nil
}

// WritePWM implements core.PWMWriter. value is a pulse width in
// microseconds (1000-2000 for a standard ESC); it is converted to a duty
// cycle against the configured 20ms period.
func (e *escPWM) WritePWM(value uint16) {
	duty := (uint32(value) * e.top) / 20000 // value is in us, period is 20000us
	machine.PWM0.Set(e.channel, duty)
}
