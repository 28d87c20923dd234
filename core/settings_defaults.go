package core

// DefaultSettings returns a conservative baseline configuration, the same
// role gopper/standalone/config.applyDefaults plays for MachineConfig:
// a starting point a settings-loading layer augments with the rig's
// actual RC channel map, PID gains, and travel endpoints.
func DefaultSettings() Settings {
	return Settings{
		P: 1.0, I: 0.0, D: 0.0,

		StickNeutralPos:   1500,
		StickNeutralRange: 20,

		StickMaxAccel: 10,
		StickMaxSpeed: 100,

		StickMaxAccelSafemode: 5,
		StickMaxSpeedSafemode: 50,

		EscNeutralPos:   1500,
		EscNeutralRange: 400,
		EscScale:        20,

		EscDirection: DirectionUnknown,

		PosStart: 0,
		PosEnd:   0,

		MaxPositionError: 50,

		StickSpeedFactor: 0.01,

		Mode: ModePassthrough,

		RCChannelSpeed:       0,
		RCChannelProgramming: 1,
		RCChannelEndpoint:    2,
		RCChannelMaxAccel:    3,
		RCChannelMaxSpeed:    4,
	}
}
