//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040/RP2350 Timer peripheral memory map, the same 1MHz hardware
// microsecond counter gopper/targets/rp2040/clock.go reads.
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x28
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// tickClock implements core.TickClock against the hardware microsecond
// timer, deriving the 1Hz gate from a tick counter rather than a second
// hardware timer.
type tickClock struct {
	ticksSinceBoot uint32
}

// Is1Hz reports true once every 50 ticks, the 50Hz scheduler's own 1
// second marker.
func (c *tickClock) Is1Hz() bool {
	return c.ticksSinceBoot%50 == 0
}

// MonotonicMs returns milliseconds since boot, derived from the hardware
// microsecond counter.
func (c *tickClock) MonotonicMs() uint32 {
	return timerRAWL.Get() / 1000
}

// advance is called once per tick by the 50Hz scheduler in main.go.
func (c *tickClock) advance() {
	c.ticksSinceBoot++
}
