package core

// outputStage implements spec.md §4.8: PASSTHROUGH/LIMITER/ENDPOINT modes
// pass the filtered stick straight through; ABSOLUTE_POSITION mode runs
// the PID loop against the integrated target position.
func (c *Controller) outputStage(stickFiltered int32, posActual int32) (int32, []Event) {
	if c.settings.Mode != ModeAbsolutePosition {
		return stickFiltered, nil
	}

	var events []Event

	c.posTarget += float64(stickFiltered) * c.settings.StickSpeedFactor
	if c.status.Safemode == Operational {
		if c.posTarget > float64(c.settings.PosEnd) {
			c.posTarget = float64(c.settings.PosEnd)
		} else if c.posTarget < float64(c.settings.PosStart) {
			c.posTarget = float64(c.settings.PosStart)
		}
	}
	c.posTargetOld = c.posTarget

	e := c.posTarget - float64(posActual)

	var escOutput int32
	if e >= float64(c.settings.MaxPositionError) || e <= -float64(c.settings.MaxPositionError) {
		c.esum, c.ealt, c.yalt = 0, 0, 0
		c.posTarget = float64(posActual)
		c.posTargetOld = c.posTarget
		escOutput = 0
		c.status.Monitor = EmergencyBrake
		return escOutput, events
	}

	c.esum += e
	y := c.settings.P*e + c.settings.I*Ta*c.esum + (c.settings.D/Ta)*(e-c.ealt)

	if c.settings.EscDirection == DirectionPositive {
		escOutput = int32(y)
	} else {
		escOutput = int32(-y)
	}

	if c.clock.Is1Hz() && absF(e) > 1.0 {
		events = append(events, Event{
			Kind:        EventPIDMonitor,
			Error:       e,
			PTerm:       c.settings.P * e,
			ITerm:       c.settings.I * Ta * c.esum,
			DTerm:       (c.settings.D / Ta) * (e - c.ealt),
			Output:      y,
			PosTarget:   int32(c.posTarget),
			PosActual:   posActual,
			SafemodeTag: c.status.Safemode,
		})
	}

	c.ealt = e
	c.yalt = y

	return escOutput, events
}

// mapPWM implements the PWM mapping half of spec.md §4.8.
func (c *Controller) mapPWM(escOutput int32) uint16 {
	switch {
	case escOutput > 0:
		return uint16(c.settings.EscNeutralPos + c.settings.EscNeutralRange + escOutput/c.settings.EscScale)
	case escOutput < 0:
		return uint16(c.settings.EscNeutralPos - c.settings.EscNeutralRange + escOutput/c.settings.EscScale)
	default:
		return uint16(c.settings.EscNeutralPos)
	}
}
