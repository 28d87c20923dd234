//go:build rp2040 || rp2350

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// buildQuadratureProgram assembles a PIO program that samples a two-phase
// incremental encoder: it reads both phase pins in a loop and pushes each
// 2-bit sample to the RX FIFO. Comparing consecutive samples to determine
// direction, and accumulating position, happen in software in
// quadratureDecoder.drain, the same software-accumulate/hardware-sample
// split gopper/targets/pio/stepper_pio.go uses the other way around
// (hardware-emit/software-queue) for step generation.
func buildQuadratureProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// sample:
		asm.In(rp2pio.InSrcPins, 2).Encode(), // 0: in pins, 2 (sample A,B)
		asm.Mov(rp2pio.MovDestISR, rp2pio.MovSrcISR).Encode(), // 1: mov isr, isr (placeholder for edge compare done in software)
		asm.Push(false, true).Encode(),       // 2: push block
		asm.Jmp(0, rp2pio.JmpAlways).Encode(), // 3: jmp sample
	}
}

// quadratureDecoder implements core.EncoderReader by reading the raw pin
// samples pushed from the PIO sampler above and accumulating a signed
// step per sample, resolving direction in software from the 2-bit
// Gray-code transition.
type quadratureDecoder struct {
	sm   rp2pio.StateMachine
	last uint8
	pos  int32
}

func newQuadratureDecoder(pioNum, smNum uint8, pinA, pinB machine.Pin) (*quadratureDecoder, error) {
	pioHW := rp2pio.PIO0
	if pioNum == 1 {
		pioHW = rp2pio.PIO1
	}
	sm := pioHW.StateMachine(smNum)
	sm.TryClaim()

	program := buildQuadratureProgram()
	offset, err := pioHW.AddProgram(program, 0)
	if err != nil {
		return nil, err
	}

	pinA.Configure(machine.PinConfig{Mode: pioHW.PinMode()})
	pinB.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetInPins(pinA)
	cfg.SetInShift(false, true, 2)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(4, 0)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	return &quadratureDecoder{sm: sm}, nil
}

var quadratureTransitionTable = map[uint8]int32{
	0b0001: 1, 0b0111: 1, 0b1110: 1, 0b1000: 1,
	0b0010: -1, 0b1011: -1, 0b1101: -1, 0b0100: -1,
}

// drain applies every sample waiting in the FIFO since the last call,
// updating the accumulated position. Called once per tick before
// EncoderValue reads it.
func (q *quadratureDecoder) drain() {
	for !q.sm.IsRxFIFOEmpty() {
		sample := uint8(q.sm.RxGet() & 0b11)
		transition := (q.last << 2) | sample
		q.pos += quadratureTransitionTable[transition]
		q.last = sample
	}
}

// EncoderValue implements core.EncoderReader.
func (q *quadratureDecoder) EncoderValue() int32 {
	q.drain()
	return q.pos
}
