// Package postgresstorage implements the storage.Backend interface using
// GORM/PostgreSQL with an internal queue and a background DB writer
// goroutine, so imports never block on the network.
package postgresstorage

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tsitools/tsikit/internal/database"
	"github.com/tsitools/tsikit/internal/model"
	"github.com/tsitools/tsikit/internal/model/convert"
	"github.com/tsitools/tsikit/internal/queue"
	gormstorage "github.com/tsitools/tsikit/internal/storage/gorm"
	"github.com/tsitools/tsikit/pkg/core"
)

// Config holds configuration for the Postgres storage backend.
type Config struct {
	FlushInterval time.Duration
	OutputDir     string
}

// Backend wraps the GORM backend with queue-based batch writes.
type Backend struct {
	*gormstorage.Backend
	db       *gorm.DB
	cfg      Config
	log      zerolog.Logger
	pending  *queue.Queue[model.FileRecord]
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new Postgres storage backend. Connection parameters come
// from the db.* config keys.
func New(cfg Config, log zerolog.Logger) (*Backend, error) {
	dbm := database.NewManager(log)
	db, err := dbm.GetPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 3 * time.Second
	}

	gormBackend := gormstorage.New(gormstorage.Dependencies{
		DB:        db,
		Logger:    log,
		OutputDir: cfg.OutputDir,
	})

	return &Backend{
		Backend:  gormBackend,
		db:       db,
		cfg:      cfg,
		log:      log,
		pending:  queue.New[model.FileRecord](),
		stopChan: make(chan struct{}),
	}, nil
}

// Init migrates the schema and starts the background writer.
func (b *Backend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}

	b.wg.Add(1)
	go b.writerLoop()
	return nil
}

// Close flushes the queue and closes the database connection.
func (b *Backend) Close() error {
	close(b.stopChan)
	b.wg.Wait()
	b.flush()
	return b.Backend.Close()
}

// ImportFile queues one decoded mapping file for the background writer.
func (b *Backend) ImportFile(source string, file *core.MappingFile) error {
	b.pending.Push(convert.CoreToFileRecord(source, file))
	return nil
}

// writerLoop periodically drains the pending queue into the database.
func (b *Backend) writerLoop() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			b.flush()
		}
	}
}

// flush writes all queued file records in one transaction. On failure the
// records go back on the queue for the next cycle.
func (b *Backend) flush() {
	if b.pending.Empty() {
		return
	}

	items := b.pending.GetAndEmpty()

	tx := b.db.Begin()
	for i := range items {
		err := tx.Where("source = ?", items[i].Source).Delete(&model.FileRecord{}).Error
		if err != nil {
			b.log.Error().Err(err).Msg("Error clearing previous imports")
			tx.Rollback()
			b.pending.Push(items...)
			return
		}
	}
	if err := tx.Create(&items).Error; err != nil {
		b.log.Error().Err(err).Msg("Error writing file records")
		tx.Rollback()
		b.pending.Push(items...)
		return
	}
	tx.Commit()

	b.log.Debug().Int("files", len(items)).Msg("Flushed file records")
}
