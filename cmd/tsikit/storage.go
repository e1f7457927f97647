package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/tsitools/tsikit/internal/config"
	"github.com/tsitools/tsikit/internal/storage"
)

// createStorageBackend builds and initializes the configured backend.
func createStorageBackend() (storage.Backend, error) {
	storageCfg := config.GetStorageConfig()

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	backend, err := storage.NewBackend(storageCfg, zlog)
	if err != nil {
		return nil, err
	}
	if err := backend.Init(); err != nil {
		return nil, err
	}

	logger.Info("Storage backend initialized", "type", storageCfg.Type)
	return backend, nil
}
