package core

import "testing"

func TestRingWrapsAndOrdersOldestFirst(t *testing.T) {
	var r Ring

	for i := 0; i < TraceCapacity+5; i++ {
		r.Push(TraceSample{Pos: int32(i)})
	}

	if got := r.Len(); got != TraceCapacity {
		t.Fatalf("Len() = %d, want %d (full, not off-by-one)", got, TraceCapacity)
	}

	// The oldest surviving sample is the 6th pushed (index 5), since the
	// first 5 were overwritten by the wrap.
	if got := r.At(0).Pos; got != 5 {
		t.Fatalf("At(0).Pos = %d, want 5", got)
	}
	if got := r.At(TraceCapacity - 1).Pos; got != int32(TraceCapacity+4) {
		t.Fatalf("At(last).Pos = %d, want %d", got, TraceCapacity+4)
	}
}

func TestRingSamplesBeforeFull(t *testing.T) {
	var r Ring
	r.Push(TraceSample{Pos: 1})
	r.Push(TraceSample{Pos: 2})
	r.Push(TraceSample{Pos: 3})

	got := r.Samples()
	want := []int32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Samples() len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Pos != w {
			t.Fatalf("Samples()[%d].Pos = %d, want %d", i, got[i].Pos, w)
		}
	}
}

// TestControllerTraceSkipsIdleTicks covers the trace ring's capture
// condition: a tick with zero speed and zero ESC output is not traced.
func TestControllerTraceSkipsIdleTicks(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)

	h.c.Tick() // idle: no frames, no motion

	if got := h.c.Status().Trace().Len(); got != 0 {
		t.Fatalf("Trace().Len() = %d, want 0 after an idle tick", got)
	}
}
