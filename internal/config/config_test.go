package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/config"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".tempo")
	assert.Equal(t, 9, cfg.DayStartHour)
	assert.Equal(t, "default", cfg.User)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".tempo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"db: /tmp/custom.db\nday_start_hour: 6\nuser: alex\n"), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 6, cfg.DayStartHour)
	assert.Equal(t, "alex", cfg.User)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEMPO_USER", "from-env")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.User)
}

func TestLoad_RejectsBadDayStart(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".tempo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"day_start_hour: 30\n"), 0o644))

	_, err := config.Load()
	assert.Error(t, err)
}
