package hostlink

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte("pos=512 speed=3 esc=1540")

	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	got, err := ReadFrame(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("ReadFrame payload = %q, want %q", got, payload)
	}
}

func TestReadFrameResyncsPastGarbage(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01, 0x02}) // noise before the first magic byte
	if err := WriteFrame(&buf, []byte("ok")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	got, err := ReadFrame(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got) != "ok" {
		t.Fatalf("ReadFrame payload = %q, want %q", got, "ok")
	}
}

func TestReadFrameRejectsCorruptedPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, []byte("pos=512")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	raw := buf.Bytes()
	raw[5] ^= 0xFF // flip a payload byte after the header, before the CRC

	if _, err := ReadFrame(bufio.NewReader(bytes.NewReader(raw))); err == nil {
		t.Fatal("expected a CRC mismatch error, got nil")
	}
}
