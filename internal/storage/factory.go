package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tsitools/tsikit/internal/config"
	"github.com/tsitools/tsikit/internal/storage/memory"
	postgresstorage "github.com/tsitools/tsikit/internal/storage/postgres"
	sqlitestorage "github.com/tsitools/tsikit/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return postgresstorage.New(postgresstorage.Config{
			FlushInterval: cfg.Postgres.FlushInterval,
			OutputDir:     cfg.OutputDir,
		}, log)
	case "sqlite":
		return sqlitestorage.New(sqlitestorage.Config{
			DumpInterval: cfg.SQLite.DumpInterval,
			DumpPath:     cfg.SQLite.Path,
			OutputDir:    cfg.OutputDir,
		}, log)
	case "memory":
		return memory.New(config.MemoryConfig{
			OutputDir: cfg.OutputDir,
			Format:    cfg.Format,
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
