//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"cablecam/core"
)

var statusColor = color.RGBA{255, 255, 255, 255}

// statusDisplay renders the controller's arming state and monitor tag on
// an attached OLED, the rig operator's equivalent of the spec's warning
// LED: a glance at the panel says INVALID_RC/PROGRAMMING/OPERATIONAL and
// FREE/ENDPOINTBRAKE/EMERGENCYBRAKE without needing the serial link.
type statusDisplay struct {
	dev ssd1306.Device
}

func newStatusDisplay(bus machine.I2C) *statusDisplay {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{Address: 0x3C, Width: 128, Height: 32})
	return &statusDisplay{dev: dev}
}

// Render draws the current ControllerStatus. Called at roughly 5Hz from
// the target's main loop, well under the 50Hz tick budget.
func (d *statusDisplay) Render(status *core.ControllerStatus) {
	d.dev.ClearDisplay()
	tinyfont.WriteLine(&d.dev, &freemono.Regular9pt7b, 0, 12, status.Safemode.String(), statusColor)
	tinyfont.WriteLine(&d.dev, &freemono.Regular9pt7b, 0, 26, status.Monitor.String(), statusColor)
	d.dev.Display()
}
