package core

import "testing"

func TestStickPositionRawDeadBand(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)
	h.c.status.Safemode = Operational // past the startup gate

	for _, tc := range []struct {
		duty uint16
		want int32
	}{
		{1500, 0},   // dead center
		{1510, 0},   // inside the +-20 band
		{1490, 0},   // inside the band, other side
		{1530, 10},  // 10 past the edge of the band
		{1470, -10}, // 10 past the edge, negative side
	} {
		raw, validFrame, ev := h.c.stickPositionRaw(tc.duty)
		if !validFrame {
			t.Fatalf("duty=%d: validFrame = false, want true", tc.duty)
		}
		if ev != nil {
			t.Fatalf("duty=%d: unexpected startup event %v", tc.duty, ev)
		}
		if raw != tc.want {
			t.Fatalf("duty=%d: raw = %d, want %d", tc.duty, raw, tc.want)
		}
	}
}

func TestStickPositionRawNoFrame(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)

	raw, validFrame, ev := h.c.stickPositionRaw(0)
	if raw != 0 || validFrame || ev != nil {
		t.Fatalf("duty=0: got (%d, %v, %v), want (0, false, nil)", raw, validFrame, ev)
	}
}

func TestStickPositionRawNotNeutralAtStartup(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)

	raw, validFrame, ev := h.c.stickPositionRaw(1800) // far from neutral
	if raw != 0 || validFrame {
		t.Fatalf("got (%d, %v), want (0, false)", raw, validFrame)
	}
	if h.c.status.Safemode != NotNeutralAtStartup {
		t.Fatalf("safemode = %v, want NOT_NEUTRAL_AT_STARTUP", h.c.status.Safemode)
	}
	if ev == nil || ev.Kind != EventNotNeutralAtStartup {
		t.Fatalf("expected EventNotNeutralAtStartup, got %v", ev)
	}

	// A second non-neutral tick must not re-emit the diagnostic.
	_, _, ev2 := h.c.stickPositionRaw(1800)
	if ev2 != nil {
		t.Fatalf("expected no event on the second offending tick, got %v", ev2)
	}
}

func TestStickCycleAccelClamp(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeLimiter // exercises the clamp without the endpoint guard
	h := newHarness(s)
	h.c.status.Safemode = Operational
	h.c.stickLastValue = 0

	h.channels.duty[s.RCChannelSpeed] = 1500 + 2000 // far past the band

	value, validFrame, _ := h.c.stickCycle(0, 0, 0)

	if !validFrame {
		t.Fatalf("validFrame = false, want true")
	}
	if want := s.StickMaxAccel; value != want {
		t.Fatalf("value = %d, want %d (one tick's worth of accel from a 0 start)", value, want)
	}
}

func TestStickCycleSpeedClamp(t *testing.T) {
	s := DefaultSettings()
	s.Mode = ModeLimiter
	s.StickMaxAccel = 100000 // accel clamp wide open; only the speed clamp should bind
	s.StickMaxSpeed = 50
	h := newHarness(s)
	h.c.status.Safemode = Operational

	h.channels.duty[s.RCChannelSpeed] = 1500 + 2000

	value, _, _ := h.c.stickCycle(0, 0, 0)

	if want := s.StickMaxSpeed * 10; value != want {
		t.Fatalf("value = %d, want %d (clamped to max_speed*10)", value, want)
	}
}
