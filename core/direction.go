package core

// inferDirection implements the direction inferencer (spec.md §4.7).
// Once esc_direction resolves to Positive or Negative it is never revised
// automatically.
func (c *Controller) inferDirection(pos int32) {
	if c.settings.EscDirection != DirectionUnknown {
		return
	}
	if pos <= 500 && pos >= -500 {
		return
	}

	sameSign := (c.stickIntegral > 0 && pos > 0) || (c.stickIntegral < 0 && pos < 0)
	if sameSign {
		c.settings.EscDirection = DirectionPositive
	} else {
		c.settings.EscDirection = DirectionNegative
	}
}
