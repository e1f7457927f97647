package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// StorageConfig selects and tunes the mapping-library storage backend.
// OutputDir and Format apply to listing exports regardless of backend.
type StorageConfig struct {
	Type      string
	OutputDir string
	Format    string // "json" or "yaml"
	SQLite    SQLiteConfig
	Postgres  PostgresConfig
}

// MemoryConfig holds in-memory/export backend settings.
type MemoryConfig struct {
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
	Format    string `json:"format" mapstructure:"format"` // "json" or "yaml"
}

// SQLiteConfig holds SQLite backend settings.
type SQLiteConfig struct {
	DumpInterval time.Duration `json:"dumpInterval" mapstructure:"dumpInterval"`
	Path         string        `json:"path" mapstructure:"path"`
}

// PostgresConfig holds Postgres backend settings. Connection parameters
// live under the db.* keys.
type PostgresConfig struct {
	FlushInterval time.Duration `json:"flushInterval" mapstructure:"flushInterval"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./tsikitlogs")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.outputDir", "./tsikit-export")
	viper.SetDefault("storage.format", "json")
	viper.SetDefault("storage.sqlite.dumpInterval", "30s")
	viper.SetDefault("storage.sqlite.path", "./tsikit.db")
	viper.SetDefault("storage.postgres.flushInterval", "3s")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "tsikit")

	// Canonical wire code written for fader/knob controls. Traktor reads
	// 1 and 2 as the same control class; 1 matches current builds.
	viper.SetDefault("write.faderKnobCode", 1)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", false)

	viper.SetConfigName("tsikit.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetStorageConfig returns the storage section as a typed struct.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type:      viper.GetString("storage.type"),
		OutputDir: viper.GetString("storage.outputDir"),
		Format:    viper.GetString("storage.format"),
		SQLite: SQLiteConfig{
			DumpInterval: viper.GetDuration("storage.sqlite.dumpInterval"),
			Path:         viper.GetString("storage.sqlite.path"),
		},
		Postgres: PostgresConfig{
			FlushInterval: viper.GetDuration("storage.postgres.flushInterval"),
		},
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
