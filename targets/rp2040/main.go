//go:build rp2040 || rp2350

// Command cablecam-rp2040 is the target firmware: it wires PIO-based RC
// channel capture and quadrature position decode, a hardware ESC PWM
// output, an OLED status display, and a diagnostic UART into the
// 50Hz control core, the same collaborator-wiring role
// gopper/targets/rp2040/main.go plays for its own drivers.
package main

import (
	"machine"
	"time"

	"cablecam/core"
	"cablecam/diag"
)

func main() {
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	machine.UART0.Configure(machine.UARTConfig{BaudRate: 115200})
	sink := diag.NewSink(func(line string) {
		machine.UART0.Write([]byte(line + "\r\n"))
	}, 16)
	defer sink.Close()

	quad, err := newQuadratureDecoder(0, 0, machine.GPIO2, machine.GPIO3)
	if err != nil {
		panic(err)
	}

	channels := &rcChannels{}
	for i, pin := range []machine.Pin{machine.GPIO4, machine.GPIO5, machine.GPIO6, machine.GPIO7, machine.GPIO8} {
		capture, err := newChannelCapture(0, uint8(i+1), pin)
		if err != nil {
			panic(err)
		}
		channels.captures[i] = capture
	}

	escOut, err := newEscPWM(machine.GPIO15)
	if err != nil {
		panic(err)
	}

	led := newWarningLED(machine.LED)
	clock := &tickClock{}

	settings := core.DefaultSettings()
	controller := core.NewController(&settings, quad, channels, clock, escOut, led)

	machine.InitI2C0(machine.I2CConfig{Frequency: machine.TWI_FREQ_400KHZ})
	display := newStatusDisplay(*machine.I2C0)

	ticker := time.NewTicker(20 * time.Millisecond) // 50Hz
	frame := 0
	for range ticker.C {
		clock.advance()
		result := controller.Tick()
		sink.Post(result.Events)

		frame++
		if frame%10 == 0 { // ~5Hz refresh, well under the tick budget
			display.Render(controller.Status())
		}
	}
}
