package core

// stickCycle implements the stick conditioner (spec.md §4.3) and, nested
// at the point the source calls it, the endpoint guard (§4.4). refPos is
// the actual position in bounded non-ABSOLUTE_POSITION modes, or
// pos_target_old in ABSOLUTE_POSITION mode; brakeDistance is the estimate
// from the brake-distance estimator; signedSpeed is pos_current -
// pos_current_old, needed by the endpoint guard's emergency-brake test.
func (c *Controller) stickCycle(refPos int32, brakeDistance float64, signedSpeed int32) (int32, bool, []Event) {
	var events []Event

	duty := c.channels.Duty(c.settings.RCChannelSpeed)

	raw, validFrame, startupEvent := c.stickPositionRaw(duty)
	if startupEvent != nil {
		events = append(events, *startupEvent)
	}
	if !validFrame {
		raw = 0
	}

	c.stickIntegral += int64(raw)
	value := raw * 10

	if c.settings.Mode == ModePassthrough {
		c.stickLastValue = value
		return value, validFrame, events
	}

	accel, speed := c.settings.StickMaxAccelSafemode, c.settings.StickMaxSpeedSafemode
	if c.status.Safemode == Operational {
		accel, speed = c.settings.StickMaxAccel, c.settings.StickMaxSpeed
	}

	diff := value - c.stickLastValue
	switch {
	case diff > accel:
		value = c.stickLastValue + accel
	case diff < -accel:
		value = c.stickLastValue - accel
	}

	maxSpeedUnits := speed * 10
	if value > maxSpeedUnits {
		value = maxSpeedUnits
	} else if value < -maxSpeedUnits {
		value = -maxSpeedUnits
	}

	if c.status.Safemode == Operational && c.settings.Mode.bounded() {
		var zeroed bool
		value, zeroed = c.endpointGuard(refPos, brakeDistance, accel, value, signedSpeed)
		if zeroed {
			return 0, validFrame, events
		}
	}

	c.stickLastValue = value
	return value, validFrame, events
}

// stickPositionRaw returns the dead-band-trimmed, neutral-rebased stick
// position (spec.md §4.3 steps 1-3), and whether this tick delivered a
// valid (nonzero) frame that did not trip the startup gate; while still
// arming, that means the stick was within the dead-band. The controller's
// mode/endpoint programmer
// (spec.md §4.5) only leaves INVALID_RC/NOT_NEUTRAL_AT_STARTUP on a tick
// where this is true, per spec.md §2's state machine description and its
// first concrete scenario: a controller that has never seen a valid,
// in-neutral frame must stay in INVALID_RC indefinitely, even though the
// programming switch itself is already readable. A non-nil event is
// returned exactly once, the tick the startup gate first engages.
func (c *Controller) stickPositionRaw(duty uint16) (int32, bool, *Event) {
	if duty == 0 {
		return 0, false, nil
	}

	raw := int32(duty) - c.settings.StickNeutralPos

	if c.status.Safemode == InvalidRC || c.status.Safemode == NotNeutralAtStartup {
		if raw > c.settings.StickNeutralRange || raw < -c.settings.StickNeutralRange {
			var ev *Event
			if c.status.Safemode == InvalidRC {
				ev = &Event{
					Kind:       EventNotNeutralAtStartup,
					RawValue:   raw,
					NeutralPos: c.settings.StickNeutralPos,
					NeutralRng: c.settings.StickNeutralRange,
				}
			}
			c.status.Safemode = NotNeutralAtStartup
			return 0, false, ev
		}
	}

	switch {
	case raw > c.settings.StickNeutralRange:
		return raw - c.settings.StickNeutralRange, true, nil
	case raw < -c.settings.StickNeutralRange:
		return raw + c.settings.StickNeutralRange, true, nil
	default:
		return 0, true, nil
	}
}
