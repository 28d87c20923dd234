package core

type fakeEncoder struct{ pos int32 }

func (f *fakeEncoder) EncoderValue() int32 { return f.pos }

type fakeChannels struct{ duty map[int]uint16 }

func newFakeChannels() *fakeChannels {
	return &fakeChannels{duty: make(map[int]uint16)}
}

func (f *fakeChannels) Duty(ch int) uint16 { return f.duty[ch] }

type fakeClock struct {
	hz1 bool
	ms  uint32
}

func (f *fakeClock) Is1Hz() bool        { return f.hz1 }
func (f *fakeClock) MonotonicMs() uint32 { return f.ms }

type fakePWM struct{ last uint16 }

func (f *fakePWM) WritePWM(v uint16) { f.last = v }

type fakeLED struct{ on bool }

func (f *fakeLED) SetWarning(on bool) { f.on = on }

// harness bundles a Controller with its fake collaborators for tests.
type harness struct {
	c        *Controller
	settings *Settings
	encoder  *fakeEncoder
	channels *fakeChannels
	clock    *fakeClock
	pwm      *fakePWM
	led      *fakeLED
}

func newHarness(settings Settings) *harness {
	h := &harness{
		settings: &settings,
		encoder:  &fakeEncoder{},
		channels: newFakeChannels(),
		clock:    &fakeClock{},
		pwm:      &fakePWM{},
		led:      &fakeLED{},
	}
	h.c = NewController(h.settings, h.encoder, h.channels, h.clock, h.pwm, h.led)
	return h
}
