package settingsstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"cablecam/core"
)

func writeTempYAML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeTempYAML(t, "posstart: 10\nposend: 900\n")

	settings, err := Load(path)
	require.NoError(t, err)

	want := core.DefaultSettings()
	want.PosStart, want.PosEnd = 10, 900

	if diff := deep.Equal(settings, want); diff != nil {
		t.Fatalf("settings mismatch: %v", diff)
	}
}

func TestLoadHonorsExplicitValues(t *testing.T) {
	path := writeTempYAML(t, "p: 2.5\nstickmaxaccel: 15\n")

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2.5, settings.P)
	require.Equal(t, int32(15), settings.StickMaxAccel)
}

func TestWatchFileReloadsOnWrite(t *testing.T) {
	path := writeTempYAML(t, "posstart: 0\nposend: 500\n")

	changed := make(chan core.Settings, 1)
	w, err := WatchFile(path, func(s core.Settings) { changed <- s })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("posstart: 0\nposend: 800\n"), 0o600))

	select {
	case s := <-changed:
		require.Equal(t, int32(800), s.PosEnd)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the watcher to reload")
	}
}
