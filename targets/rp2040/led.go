//go:build rp2040 || rp2350

package main

import "machine"

// warningLED implements core.WarningLED by driving the onboard LED, the
// target-side half of the spec's endpoint-guard LED indication.
type warningLED struct {
	pin machine.Pin
}

func newWarningLED(pin machine.Pin) *warningLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &warningLED{pin: pin}
}

func (l *warningLED) SetWarning(on bool) {
	l.pin.Set(on)
}
