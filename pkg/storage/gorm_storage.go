package storage

import (
	"Go-Pantry-Tracker/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStorage struct {
	db *gorm.DB
}

// NewGormStorage keeps each key as one row of the kv_entries table.
func NewGormStorage(db *gorm.DB) KeyValueStorage {
	return &gormStorage{db: db}
}

func (r *gormStorage) Put(ctx context.Context, key, value string) error {
	entry := &entities.KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *gormStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var entry entities.KVEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *gormStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("key IN ?", keys).Delete(&entities.KVEntry{}).Error
}
