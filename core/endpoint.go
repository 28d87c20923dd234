package core

// endpointGuard implements spec.md §4.4. It may further mutate value and
// commit stickLastValue itself when returning zeroed=true (both hard
// failsafes below commit stickLastValue before their zero-return: the
// spec resolves the source's asymmetry here, per spec.md §9's open
// question, by treating the two endpoints identically).
func (c *Controller) endpointGuard(pos int32, brakeDistance float64, maxAccel int32, value int32, speed int32) (result int32, zeroed bool) {
	if c.settings.PosStart > c.settings.PosEnd {
		c.settings.PosStart, c.settings.PosEnd = c.settings.PosEnd, c.settings.PosStart
	}

	dir := c.settings.EscDirection.sign()

	// Upper endpoint.
	if float64(pos)+brakeDistance >= float64(c.settings.PosEnd) {
		if dir*value > 0 {
			value = c.stickLastValue - maxAccel*dir
			if value*dir < 0 {
				value = 0
			}
			c.status.Monitor = EndpointBrake
			c.led.SetWarning(true)

			if pos >= c.settings.PosEnd {
				c.stickLastValue = 0
				return 0, true
			}
		} else {
			c.status.Monitor = Free
			c.led.SetWarning(false)
		}

		if float64(pos)+brakeDistance >= float64(c.settings.PosEnd+c.settings.MaxPositionError) && speed > 0 {
			c.status.Monitor = EmergencyBrake
			c.led.SetWarning(true)
			c.stickLastValue = value
			return 0, true
		}
	}

	// Lower endpoint.
	if float64(pos)-brakeDistance <= float64(c.settings.PosStart) {
		if dir*value < 0 {
			value = c.stickLastValue + maxAccel*dir
			if value*dir > 0 {
				value = 0
			}
			c.status.Monitor = EndpointBrake
			c.led.SetWarning(true)

			if pos <= c.settings.PosStart {
				c.stickLastValue = 0
				return 0, true
			}
		} else {
			c.status.Monitor = Free
			c.led.SetWarning(false)
		}

		if float64(pos)-brakeDistance <= float64(c.settings.PosStart-c.settings.MaxPositionError) && speed < 0 {
			c.status.Monitor = EmergencyBrake
			c.led.SetWarning(true)
			c.stickLastValue = value
			return 0, true
		}
	}

	return value, false
}
