// Package settingsstore loads core.Settings from a YAML file and applies
// defaults for anything the file omits, the same role
// gopper/standalone/config.LoadConfig plays for MachineConfig. It also
// watches the file for changes so a rig's endpoints/PID gains can be
// retuned without a firmware reflash.
package settingsstore

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"cablecam/core"
)

// Load parses the YAML file at path into a core.Settings. Fields the file
// omits keep their core.DefaultSettings value; applyDefaults then restores
// a fixed set of fields that the file sets to zero.
func Load(path string) (core.Settings, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return core.Settings{}, fmt.Errorf("settingsstore: load %s: %w", path, err)
	}

	settings := core.DefaultSettings()
	if err := k.Unmarshal("", &settings); err != nil {
		return core.Settings{}, fmt.Errorf("settingsstore: unmarshal %s: %w", path, err)
	}
	applyDefaults(&settings)
	return settings, nil
}

// applyDefaults restores the fields checked below to their DefaultSettings
// value when they are zero. Unmarshal decodes into the pre-filled
// DefaultSettings struct, so omitted fields already keep their defaults;
// this covers the listed fields when the file sets them to zero
// explicitly. Other fields set to zero in the file stay zero.
func applyDefaults(s *core.Settings) {
	d := core.DefaultSettings()
	if s.StickNeutralRange == 0 {
		s.StickNeutralRange = d.StickNeutralRange
	}
	if s.StickMaxAccel == 0 {
		s.StickMaxAccel = d.StickMaxAccel
	}
	if s.StickMaxSpeed == 0 {
		s.StickMaxSpeed = d.StickMaxSpeed
	}
	if s.StickMaxAccelSafemode == 0 {
		s.StickMaxAccelSafemode = d.StickMaxAccelSafemode
	}
	if s.StickMaxSpeedSafemode == 0 {
		s.StickMaxSpeedSafemode = d.StickMaxSpeedSafemode
	}
	if s.EscNeutralRange == 0 {
		s.EscNeutralRange = d.EscNeutralRange
	}
	if s.EscScale == 0 {
		s.EscScale = d.EscScale
	}
	if s.MaxPositionError == 0 {
		s.MaxPositionError = d.MaxPositionError
	}
	if s.StickSpeedFactor == 0 {
		s.StickSpeedFactor = d.StickSpeedFactor
	}
}

// Watcher reloads a core.Settings from disk whenever the backing file
// changes, so a live rig can pick up new endpoints/PID gains without a
// restart. The reloaded Settings is handed to onChange; it is the
// caller's responsibility to apply it (core.Controller.Settings() is a
// borrowed pointer, so the simplest onChange just copies field by field).
type Watcher struct {
	path     string
	onChange func(core.Settings)

	mu     sync.Mutex
	watch  *fsnotify.Watcher
	closed bool
}

// WatchFile starts watching path and returns a Watcher. Call Close to stop.
func WatchFile(path string, onChange func(core.Settings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settingsstore: new watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("settingsstore: watch %s: %w", path, err)
	}

	w := &Watcher{path: path, onChange: onChange, watch: fw}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.watch.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settings, err := Load(w.path)
			if err != nil {
				continue // keep the previous settings on a transient parse error
			}
			w.onChange(settings)
		case _, ok := <-w.watch.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watch.Close()
}
