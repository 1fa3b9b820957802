package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/offlinefirst/keypost/pkg/inject"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keypost.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(cwd)
	require.NoError(t, os.Chdir(dir))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "<defaults>", cfg.Source)
	require.Equal(t, []int{549}, cfg.Targets.PIDs)
	require.Equal(t, []string{"0x03", "0x37"}, cfg.Keys.Chord)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestDefaultEventsReproduceCommandF(t *testing.T) {
	events, err := Default().Events()
	require.NoError(t, err)
	require.Equal(t, []inject.Event{
		inject.KeyEvent{Code: 0x03, Down: true},
		inject.KeyEvent{Code: 0x37, Down: true},
		inject.KeyEvent{Code: 0x37, Down: false},
		inject.KeyEvent{Code: 0x03, Down: false},
	}, events)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
targets:
  pids: [101, 202, 303]
keys:
  chord: ["cmd", "shift", "z"]
delivery:
  delay_ms: 25
  dry_run: true
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.Equal(t, []int{101, 202, 303}, cfg.Targets.PIDs)
	require.Equal(t, []string{"cmd", "shift", "z"}, cfg.Keys.Chord)
	require.Equal(t, 25, cfg.Delivery.DelayMillis)
	require.True(t, cfg.Delivery.DryRun)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)

	events, err := cfg.Events()
	require.NoError(t, err)
	require.Len(t, events, 6)
	require.Equal(t, inject.KeyEvent{Code: inject.KeyCommand, Down: true}, events[0])
	require.Equal(t, inject.KeyEvent{Code: inject.KeyCommand, Down: false}, events[5])
}

func TestSequenceTakesPrecedenceOverChord(t *testing.T) {
	path := writeConfig(t, `
keys:
  sequence:
    - key: space
      down: true
    - key: "0x31"
      down: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	events, err := cfg.Events()
	require.NoError(t, err)
	require.Equal(t, []inject.Event{
		inject.KeyEvent{Code: inject.KeySpace, Down: true},
		inject.KeyEvent{Code: inject.KeySpace, Down: false},
	}, events)
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, []int{549}, cfg.Targets.PIDs)
}

func TestUnknownKeyReturnsError(t *testing.T) {
	_, err := Load(writeConfig(t, "delivery:\n  unsupported: true\n"))
	require.Error(t, err)
}

func TestUnknownVirtualKeyReturnsError(t *testing.T) {
	_, err := Load(writeConfig(t, "keys:\n  chord: [\"hyper\"]\n"))
	require.Error(t, err)
	require.ErrorIs(t, err, inject.ErrUnknownKey)
}

func TestNegativeDelayRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "delivery:\n  delay_ms: -5\n"))
	require.Error(t, err)
}

func TestInvalidLogLevelRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "logging:\n  level: chatty\n"))
	require.Error(t, err)
}

func TestNormalizeFormat(t *testing.T) {
	for input, expected := range map[string]string{"": "console", "TEXT": "console", "json": "json"} {
		got, err := NormalizeFormat(input)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}
	_, err := NormalizeFormat("xml")
	require.Error(t, err)
}
