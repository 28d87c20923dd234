// Package hostlink is the host side of the serial link to the controller
// target: opening the port, framing trace/status messages with a CRC
// footer, and reconnecting with backoff when the cable drops. Modeled on
// gopper/host/serial, but this rig only ever reads diagnostic frames off
// the wire; it never queues commands back to the target.
package hostlink

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config mirrors gopper/host/serial.Config.
type Config struct {
	Device      string
	Baud        int
	ReadTimeout int // milliseconds, 0 = blocking
}

// DefaultConfig returns a baseline configuration for the cablecam's
// diagnostic UART, distinct from Klipper's 250000 baud convention since
// this link only ever carries trace frames, not step commands.
func DefaultConfig(device string) Config {
	return Config{Device: device, Baud: 115200, ReadTimeout: 100}
}

// Port is the minimal surface hostlink needs from a serial connection,
// narrow enough that tests can substitute an in-memory pipe.
type Port interface {
	io.ReadWriteCloser
}

// Open opens a native serial port via tarm/serial, gopper's own choice
// for this concern.
func Open(cfg Config) (Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("hostlink: open %s: %w", cfg.Device, err)
	}
	return port, nil
}
