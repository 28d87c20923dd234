package core

// Controller is the single owned record holding all carry state between
// ticks, replacing the source firmware's file-scope globals (spec.md §9).
// The periodic task is Controller.Tick, a method on this record; Settings
// is a separate, borrowed record the caller may also mutate out-of-band
// (e.g. from a configuration path external to the core).
type Controller struct {
	settings *Settings
	status   ControllerStatus

	encoder  EncoderReader
	channels ChannelSource
	clock    TickClock
	pwm      PWMWriter
	led      WarningLED

	// Per-tick carry state (spec.md §3).
	stickLastValue     int32
	posCurrentOld      int32
	posTarget          float64
	posTargetOld       float64
	esum, ealt, yalt   float64
	stickIntegral      int64
	endpointClicks     uint8
	lastEndpointSwitch uint16
}

// Ta is the fixed 50Hz tick period in seconds.
const Ta = 0.02

// NewController wires a Controller to its external collaborators and an
// initial Settings snapshot. Settings is stored by pointer: the core reads
// it every tick and may write StickMaxAccel, StickMaxSpeed, PosStart,
// PosEnd, EscDirection back into it, per spec.md §6.
func NewController(settings *Settings, encoder EncoderReader, channels ChannelSource, clock TickClock, pwm PWMWriter, led WarningLED) *Controller {
	return &Controller{
		settings: settings,
		status:   NewControllerStatus(),
		encoder:  encoder,
		channels: channels,
		clock:    clock,
		pwm:      pwm,
		led:      led,
	}
}

// Status returns the controller's current per-tick status record.
func (c *Controller) Status() *ControllerStatus {
	return &c.status
}

// Settings returns the borrowed settings record.
func (c *Controller) Settings() *Settings {
	return c.settings
}

// TickResult is everything one invocation of Tick produced, beyond the
// single PWM write and any warning-LED writes it already performed as
// side effects on the injected collaborators.
type TickResult struct {
	PWM    uint16
	Events []Event
}

// Tick runs one 50Hz control cycle. Steps execute in the strict order of
// spec.md §2; no step observes a later step's output.
func (c *Controller) Tick() TickResult {
	c.status.Monitor = Free // may be overwritten by the endpoint guard; must come first

	var events []Event

	// 1. Sampler, 2. Brake-distance estimator.
	posCurrent := c.encoder.EncoderValue()
	speedCurrent := abs32(c.posCurrentOld - posCurrent)
	signedSpeed := posCurrent - c.posCurrentOld

	timeToStop := absF(float64(c.stickLastValue) / float64(c.settings.StickMaxAccel))
	distanceToStop := float64(speedCurrent) * timeToStop / 2.0

	// Reference position for the endpoint guard: actual position, except
	// in ABSOLUTE_POSITION mode where the target position is authoritative.
	refPos := posCurrent
	if c.settings.Mode == ModeAbsolutePosition {
		refPos = int32(c.posTargetOld)
	}

	// 3. Stick conditioner (and, nested within it, 4. the endpoint guard).
	stickFiltered, validFrame, stickEvents := c.stickCycle(refPos, distanceToStop, signedSpeed)
	events = append(events, stickEvents...)

	// 5. Mode/endpoint programmer.
	events = append(events, c.runProgrammer(posCurrent, validFrame)...)

	// 6. Potentiometer ingest.
	c.ingestPotentiometers()

	// 7. Direction inferencer.
	c.inferDirection(posCurrent)

	// 8. Output stage.
	escOutput, outEvents := c.outputStage(stickFiltered, posCurrent)
	events = append(events, outEvents...)
	pwmValue := c.mapPWM(escOutput)
	c.pwm.WritePWM(pwmValue)

	// 1Hz full-cycle status line (supplemented from the original source;
	// see SPEC_FULL.md).
	if c.clock.Is1Hz() {
		events = append(events, Event{
			Kind:           EventCycleStatus,
			Duty:           int32(c.channels.Duty(c.settings.RCChannelSpeed)),
			StickInput:     stickFiltered,
			Speed:          speedCurrent,
			DistanceToStop: distanceToStop,
			EscOut:         pwmValue,
			SafemodeTag:    c.status.Safemode,
			MonitorTag:     c.status.Monitor,
			PosActual:      posCurrent,
		})
	}

	// 9. Trace ring buffer.
	if speedCurrent != 0 || escOutput != 0 {
		c.status.trace.Push(TraceSample{
			Pos:            posCurrent,
			Speed:          speedCurrent,
			Stick:          c.stickLastValue,
			DistanceToStop: distanceToStop,
			Esc:            pwmValue,
			TickMs:         c.clock.MonotonicMs(),
		})
	}

	c.posCurrentOld = posCurrent

	return TickResult{PWM: pwmValue, Events: events}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
