// Package storage defines the backend interface for indexing decoded
// controller mapping files into a queryable library.
package storage

import "github.com/tsitools/tsikit/pkg/core"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// ImportFile indexes one decoded mapping file. source identifies where
	// the file came from, usually its path.
	ImportFile(source string, file *core.MappingFile) error

	// Export writes a listing of everything indexed so far and returns the
	// path of the written file.
	Export() (string, error)
}
