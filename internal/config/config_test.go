package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"storage": {
			"type": "sqlite",
			"sqlite": { "dumpInterval": "5s" },
			"postgres": { "flushInterval": "10s" }
		},
		"db": { "host": "10.0.0.1", "port": "5433" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsikit.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "10.0.0.1", viper.GetString("db.host"))
	assert.Equal(t, "5433", viper.GetString("db.port"))

	storage := GetStorageConfig()
	assert.Equal(t, "sqlite", storage.Type)
	assert.Equal(t, 5*time.Second, storage.SQLite.DumpInterval)
	assert.Equal(t, 10*time.Second, storage.Postgres.FlushInterval)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsikit.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./tsikitlogs", viper.GetString("logsDir"))
	assert.Equal(t, 1, viper.GetInt("write.faderKnobCode"))
	assert.False(t, viper.GetBool("otel.enabled"))

	storage := GetStorageConfig()
	assert.Equal(t, "memory", storage.Type)
	assert.Equal(t, "json", storage.Format)
	assert.Equal(t, 30*time.Second, storage.SQLite.DumpInterval)
	assert.Equal(t, 3*time.Second, storage.Postgres.FlushInterval)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	assert.Error(t, err)
}
