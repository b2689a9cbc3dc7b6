package entities

import (
	"time"
)

// KVEntry backs one storage partition when the postgres driver is selected.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(128)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone" json:"updated_at"`
}
