package core

// switchHighThreshold is the strict "high" threshold for the programming
// and endpoint-set auxiliary channels (spec.md §6).
const switchHighThreshold = 1200

// runProgrammer implements the mode/endpoint programmer (spec.md §4.5):
// the programming-switch-driven safemode transitions, and the
// edge-triggered endpoint-set logic. validFrame, from the stick
// conditioner, gates the one-time exit from the startup states: see the
// comment on stickPositionRaw.
func (c *Controller) runProgrammer(posCurrent int32, validFrame bool) []Event {
	startingUp := c.status.Safemode == InvalidRC || c.status.Safemode == NotNeutralAtStartup
	if startingUp && !validFrame {
		return nil
	}

	var events []Event

	programmingDuty := c.channels.Duty(c.settings.RCChannelProgramming)
	if programmingDuty > switchHighThreshold {
		if c.status.Safemode != Operational {
			events = append(events, Event{Kind: EventEnteredOperational})
		}
		c.status.Safemode = Operational
	} else {
		if c.status.Safemode != Programming {
			c.endpointClicks = 0
			events = append(events, Event{Kind: EventEnteredProgramming})
		}
		c.status.Safemode = Programming
	}

	endpointDuty := c.channels.Duty(c.settings.RCChannelEndpoint)
	if endpointDuty > switchHighThreshold &&
		c.status.Safemode == Programming &&
		c.lastEndpointSwitch <= switchHighThreshold &&
		c.lastEndpointSwitch != 0 {

		if c.endpointClicks == 0 {
			c.settings.PosStart = posCurrent
			c.endpointClicks = 1
			events = append(events, Event{Kind: EventEndpointSet, PointIndex: 1, AtPosition: posCurrent})
		} else {
			if c.settings.PosStart < posCurrent {
				c.settings.PosEnd = posCurrent
			} else {
				c.settings.PosEnd = c.settings.PosStart
				c.settings.PosStart = posCurrent
			}
			events = append(events, Event{Kind: EventEndpointSet, PointIndex: 2, AtPosition: posCurrent})
		}
	}
	c.lastEndpointSwitch = endpointDuty

	return events
}

// ingestPotentiometers implements the potentiometer ingest (spec.md §4.6):
// live max-acceleration and max-speed updates from two auxiliary channels.
// Integer division truncates, matching the source.
func (c *Controller) ingestPotentiometers() {
	threshold := c.settings.StickNeutralPos + c.settings.StickNeutralRange

	if x := int32(c.channels.Duty(c.settings.RCChannelMaxAccel)); x != 0 && x > threshold {
		c.settings.StickMaxAccel = 1 + (x-threshold)/c.settings.EscScale/2
	}

	if x := int32(c.channels.Duty(c.settings.RCChannelMaxSpeed)); x != 0 && x > threshold {
		c.settings.StickMaxSpeed = 1 + (x-threshold)*10/c.settings.EscScale
	}
}
