// Package sqlite provides a SQLite-backed key-value store. Each key holds
// one JSON blob; the row is replaced in a single statement, so a failed
// write leaves the previous value intact.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mealforge/v1/internal/ports/outbound"
)

// blobModel is the kv table row.
type blobModel struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName maps the model to its table.
func (blobModel) TableName() string { return "blobs" }

// Store implements outbound.KeyValueStore on SQLite via GORM.
type Store struct {
	db *gorm.DB
}

// NewStore opens (or creates) the database file and migrates the kv table.
// An empty path selects an in-memory database.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&blobModel{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &Store{db: db}, nil
}

// Get reads the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var row blobModel
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return row.Value, nil
}

// Put replaces the blob stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	row := blobModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key. Missing keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&blobModel{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping reports connection health.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}
