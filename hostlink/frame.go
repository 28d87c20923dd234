package hostlink

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/snksoft/crc"
)

// frameTable is the CCITT-false CRC16 variant, the same polynomial class
// gopper/protocol/crc16.go hand-rolls for Klipper's wire format. This link
// isn't speaking Klipper's protocol, so it uses the pack's own CRC16
// library (github.com/snksoft/crc) instead of hand-rolling another copy.
var frameTable = crc.NewTable(crc.CCITT)

// magic marks the start of a trace frame on the wire.
const magic = 0xC5

// WriteFrame encodes payload as: magic byte, 2-byte little-endian length,
// payload, 2-byte little-endian CRC16 over the payload.
func WriteFrame(w io.Writer, payload []byte) error {
	header := make([]byte, 3)
	header[0] = magic
	binary.LittleEndian.PutUint16(header[1:], uint16(len(payload)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("hostlink: write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("hostlink: write frame payload: %w", err)
	}
	var footer [2]byte
	binary.LittleEndian.PutUint16(footer[:], crc.CalculateCRC(frameTable, payload))
	if _, err := w.Write(footer[:]); err != nil {
		return fmt.Errorf("hostlink: write frame footer: %w", err)
	}
	return nil
}

// ReadFrame reads one frame from r, resyncing on the magic byte, and
// verifies its CRC. Returns the payload.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("hostlink: read magic: %w", err)
		}
		if b == magic {
			break
		}
	}

	lenBuf := make([]byte, 2)
	if _, err := io.ReadFull(r, lenBuf); err != nil {
		return nil, fmt.Errorf("hostlink: read length: %w", err)
	}
	length := binary.LittleEndian.Uint16(lenBuf)

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("hostlink: read payload: %w", err)
	}

	footer := make([]byte, 2)
	if _, err := io.ReadFull(r, footer); err != nil {
		return nil, fmt.Errorf("hostlink: read footer: %w", err)
	}
	want := crc.CalculateCRC(frameTable, payload)
	got := binary.LittleEndian.Uint16(footer)
	if got != want {
		return nil, fmt.Errorf("hostlink: crc mismatch: got %04x want %04x", got, want)
	}

	return payload, nil
}
