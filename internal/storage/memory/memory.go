// Package memory implements the storage.Backend interface with an in-memory
// index and a JSON or YAML listing export.
package memory

import (
	"sync"
	"time"

	"github.com/tsitools/tsikit/internal/config"
	"github.com/tsitools/tsikit/pkg/core"
)

// indexedFile groups one imported mapping file with its import metadata.
type indexedFile struct {
	Source     string
	ImportedAt time.Time
	File       *core.MappingFile
}

// Backend stores imported mapping files in memory and exports a listing.
type Backend struct {
	cfg   config.MemoryConfig
	files []indexedFile
	mu    sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// ImportFile indexes one decoded mapping file, replacing any previous import
// from the same source.
func (b *Backend) ImportFile(source string, file *core.MappingFile) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := indexedFile{
		Source:     source,
		ImportedAt: time.Now().UTC(),
		File:       file,
	}

	for i := range b.files {
		if b.files[i].Source == source {
			b.files[i] = entry
			return nil
		}
	}
	b.files = append(b.files, entry)
	return nil
}
