//go:build rp2040 || rp2350

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// buildPulseWidthProgram assembles a PIO program that measures the
// high-pulse width of an RC input in clock cycles, the same AssemblerV0
// technique gopper/targets/pio/stepper_pio.go uses for step generation,
// turned around to count cycles instead of emitting pulses:
//
//  1. wait for the pin to go high
//  2. count down the X register once per cycle while the pin stays high
//  3. once the pin drops, push (starting_x - x) to the RX FIFO
//
// This yields one FIFO word per RC frame, counting down from 0xFFFFFFFF
// so the elapsed cycle count is recoverable as the complement of the
// final X value.
func buildPulseWidthProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Wait(true, rp2pio.WaitSrcPin, 0).Encode(),  // 0: wait 1 pin, 0 (rising edge)
		asm.Set(rp2pio.SetDestX, 31).Encode(),          // 1: set x, 31 (seed countdown)
		// pulse_loop:
		asm.Jmp(2, rp2pio.JmpXNZeroDec).Encode(), // 2: jmp x--, 2 while the pin still reads high
		asm.In(rp2pio.InSrcX, 32).Encode(),       // 3: in x, 32 (push elapsed count)
		asm.Push(false, true).Encode(),           // 4: push block
	}
}

// channelCapture reads one RC channel's pulse width via a dedicated PIO
// state machine and converts the captured cycle count to microseconds.
type channelCapture struct {
	pio      *rp2pio.PIO
	sm       rp2pio.StateMachine
	clockMHz uint32
}

// newChannelCapture claims a state machine on pioNum and loads the pulse
// width measurement program, wiring it to read pin.
func newChannelCapture(pioNum, smNum uint8, pin machine.Pin) (*channelCapture, error) {
	pioHW := rp2pio.PIO0
	if pioNum == 1 {
		pioHW = rp2pio.PIO1
	}
	sm := pioHW.StateMachine(smNum)
	sm.TryClaim()

	program := buildPulseWidthProgram()
	offset, err := pioHW.AddProgram(program, 0)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetInPins(pin)
	cfg.SetJmpPin(pin)
	cfg.SetInShift(false, true, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(1, 0) // full speed; microsecond conversion happens in software

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	return &channelCapture{pio: pioHW, sm: sm, clockMHz: 125}, nil
}

// Duty implements core.ChannelSource.Duty for one channel: the most
// recent captured pulse width in microseconds, or 0 if no frame has
// arrived since the last read.
func (c *channelCapture) Duty() uint16 {
	if c.sm.IsRxFIFOEmpty() {
		return 0
	}
	cycles := ^c.sm.RxGet() // complement of the countdown value is elapsed cycles
	return uint16(cycles / c.clockMHz)
}

// rcChannels wires five channelCaptures to core.ChannelSource, one per
// auxiliary RC channel the control core reads.
type rcChannels struct {
	captures [5]*channelCapture
}

func (r *rcChannels) Duty(ch int) uint16 {
	if ch < 0 || ch >= len(r.captures) || r.captures[ch] == nil {
		return 0
	}
	return r.captures[ch].Duty()
}
