package core

import "testing"

func TestInferDirectionStaysUnknownNearOrigin(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)
	h.c.stickIntegral = 1000

	h.c.inferDirection(500)

	if h.settings.EscDirection != DirectionUnknown {
		t.Fatalf("EscDirection = %v, want DirectionUnknown within the +-500 dead zone", h.settings.EscDirection)
	}
}

func TestInferDirectionResolvesPositive(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)
	h.c.stickIntegral = 5000

	h.c.inferDirection(900)

	if h.settings.EscDirection != DirectionPositive {
		t.Fatalf("EscDirection = %v, want DirectionPositive (stick and position agree in sign)", h.settings.EscDirection)
	}
}

func TestInferDirectionResolvesNegative(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(s)
	h.c.stickIntegral = 5000

	h.c.inferDirection(-900)

	if h.settings.EscDirection != DirectionNegative {
		t.Fatalf("EscDirection = %v, want DirectionNegative (stick and position disagree in sign)", h.settings.EscDirection)
	}
}

func TestInferDirectionNeverRevisesOnceResolved(t *testing.T) {
	s := DefaultSettings()
	s.EscDirection = DirectionPositive
	h := newHarness(s)
	h.c.stickIntegral = -5000

	h.c.inferDirection(-900) // would resolve Negative from scratch

	if h.settings.EscDirection != DirectionPositive {
		t.Fatalf("EscDirection = %v, want it to stay at the already-resolved DirectionPositive", h.settings.EscDirection)
	}
}
