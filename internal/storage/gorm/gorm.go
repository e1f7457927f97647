// Package gormstorage implements the storage.Backend interface on top of a
// GORM database handle. It is database-agnostic: the sqlite and postgres
// backends supply the handle and compose over this one.
package gormstorage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tsitools/tsikit/internal/model"
	"github.com/tsitools/tsikit/internal/model/convert"
	"github.com/tsitools/tsikit/pkg/core"
)

// Dependencies holds everything the GORM backend needs.
type Dependencies struct {
	DB        *gorm.DB
	Logger    zerolog.Logger
	OutputDir string
}

// Backend indexes mapping files into a GORM database.
type Backend struct {
	db        *gorm.DB
	log       zerolog.Logger
	outputDir string
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{
		db:        deps.DB,
		log:       deps.Logger,
		outputDir: deps.OutputDir,
	}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ImportFile indexes one decoded mapping file, replacing any previous import
// from the same source.
func (b *Backend) ImportFile(source string, file *core.MappingFile) error {
	var existing []model.FileRecord
	if err := b.db.Where("source = ?", source).Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to look up existing import: %w", err)
	}
	for i := range existing {
		if err := b.db.Select(clause.Associations).Delete(&existing[i]).Error; err != nil {
			return fmt.Errorf("failed to delete previous import: %w", err)
		}
	}

	record := convert.CoreToFileRecord(source, file)
	if err := b.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to index mapping file: %w", err)
	}

	b.log.Info().
		Str("source", source).
		Int("devices", record.DeviceCount).
		Int("mappings", record.MappingCount).
		Msg("Indexed mapping file")
	return nil
}

// Files returns all indexed files with their devices and mappings loaded.
func (b *Backend) Files() ([]model.FileRecord, error) {
	var files []model.FileRecord
	err := b.db.Preload("Devices.Mappings").Order("id").Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query indexed files: %w", err)
	}
	return files, nil
}

// Export writes a JSON listing of all indexed files and returns its path.
func (b *Backend) Export() (string, error) {
	files, err := b.Files()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(b.outputDir, "tsikit-index.json")
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write listing: %w", err)
	}

	b.log.Info().Str("path", path).Int("files", len(files)).Msg("Exported index listing")
	return path, nil
}
