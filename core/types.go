// Package core implements the cablecam control core: a single periodic
// task, invoked at 50 Hz, that turns an RC stick reading into an ESC
// pulse-width command under acceleration/speed limits, endpoint braking,
// and an optional absolute-position PID loop.
//
// The package has no third-party dependencies, matching the real-time
// discipline of the teacher firmware's own core package. Carry state and
// the trace ring are fixed-size; the one allocation on the Tick path is
// the returned Event slice, which Tick grows with append on ticks that
// emit events.
package core

// Mode selects how the filtered stick value is turned into an ESC command.
type Mode uint8

const (
	ModePassthrough Mode = iota
	ModeLimiter
	ModeEndpoint
	ModeAbsolutePosition
)

func (m Mode) String() string {
	switch m {
	case ModePassthrough:
		return "PASSTHROUGH"
	case ModeLimiter:
		return "LIMITER"
	case ModeEndpoint:
		return "ENDPOINT"
	case ModeAbsolutePosition:
		return "ABSOLUTE_POSITION"
	default:
		return "UNKNOWN_MODE"
	}
}

// bounded reports whether the endpoint guard applies in this mode.
func (m Mode) bounded() bool {
	return m == ModeEndpoint || m == ModeAbsolutePosition
}

// SafeMode is the controller's arming state machine.
type SafeMode uint8

const (
	InvalidRC SafeMode = iota
	NotNeutralAtStartup
	Programming
	Operational
)

func (s SafeMode) String() string {
	switch s {
	case InvalidRC:
		return "INVALID_RC"
	case NotNeutralAtStartup:
		return "NOT_NEUTRAL_AT_STARTUP"
	case Programming:
		return "PROGRAMMING"
	case Operational:
		return "OPERATIONAL"
	default:
		return "UNKNOWN_SAFEMODE"
	}
}

// Monitor is the per-tick status tag reset to Free at the top of every tick.
type Monitor uint8

const (
	Free Monitor = iota
	EndpointBrake
	EmergencyBrake
)

func (m Monitor) String() string {
	switch m {
	case Free:
		return "FREE"
	case EndpointBrake:
		return "ENDPOINTBRAKE"
	case EmergencyBrake:
		return "EMERGENCYBRAKE"
	default:
		return "UNKNOWN_MONITOR"
	}
}

// EscDirection is the sign of the coupling between commanded stick and
// resulting position change. Modeled as a tagged variant rather than a
// signed integer with a magic zero, per the design notes: zero is not a
// valid direction, it is the "not yet known" state.
type EscDirection uint8

const (
	DirectionUnknown EscDirection = iota
	DirectionPositive
	DirectionNegative
)

func (d EscDirection) String() string {
	switch d {
	case DirectionPositive:
		return "+1"
	case DirectionNegative:
		return "-1"
	default:
		return "unknown"
	}
}

// sign returns +1, -1, or 0 for DirectionUnknown. The endpoint guard
// relies on the zero value disabling its directional comparisons until
// the direction inferencer resolves one, exactly as the source's
// signed-integer esc_direction did.
func (d EscDirection) sign() int32 {
	switch d {
	case DirectionPositive:
		return 1
	case DirectionNegative:
		return -1
	default:
		return 0
	}
}

// Settings is the configuration record, mutated rarely (by an external
// configuration path or by the potentiometer-ingest and endpoint-programmer
// steps below) and read every tick. The core tolerates a torn read of a
// single scalar: the next tick converges.
type Settings struct {
	P, I, D float64 // PID gains

	StickNeutralPos   int32 // pulse-width center of the dead-band, in µs
	StickNeutralRange int32 // half-width of the dead-band, in µs

	StickMaxAccel int32 // operational per-tick acceleration cap, 0.1µs/tick
	StickMaxSpeed int32 // operational absolute speed cap, 0.1µs

	StickMaxAccelSafemode int32 // caps while not OPERATIONAL
	StickMaxSpeedSafemode int32

	EscNeutralPos   int32 // PWM mapping constants
	EscNeutralRange int32
	EscScale        int32

	EscDirection EscDirection

	PosStart, PosEnd int32 // travel endpoints, encoder counts

	MaxPositionError int32 // tolerance before emergency braking

	StickSpeedFactor float64 // stick -> target-position delta per tick, ABSOLUTE_POSITION

	Mode Mode

	// RC auxiliary channel indices.
	RCChannelSpeed       int
	RCChannelProgramming int
	RCChannelEndpoint    int
	RCChannelMaxAccel    int
	RCChannelMaxSpeed    int
}

// TraceSample is one diagnostic data point appended to the trace ring.
type TraceSample struct {
	Pos            int32
	Speed          int32
	Stick          int32
	DistanceToStop float64
	Esc            uint16 // PWM value written
	TickMs         uint32 // monotonic_ms at capture time
}

// ControllerStatus is the per-tick mutable status record.
type ControllerStatus struct {
	Safemode SafeMode
	Monitor  Monitor

	trace Ring
}

// Trace returns the diagnostic ring buffer backing this status record.
func (s *ControllerStatus) Trace() *Ring {
	return &s.trace
}

// NewControllerStatus returns a status record in its initial state:
// INVALID_RC, FREE, with an empty trace ring.
func NewControllerStatus() ControllerStatus {
	return ControllerStatus{
		Safemode: InvalidRC,
		Monitor:  Free,
	}
}
