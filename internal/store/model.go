package store

import (
	"time"

	"github.com/lib/pq"
)

// Note is a saved note. Notes are append-only: never updated or deleted.
type Note struct {
	ID    uint64 `gorm:"primaryKey"`
	Owner string `gorm:"index;not null"`
	Text  string `gorm:"type:text;not null"`

	Tags pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// Reminder is a scheduled one-shot notification. Sent transitions false->true
// exactly once, after a delivery attempt succeeds. Rows are never deleted.
type Reminder struct {
	ID    uint64 `gorm:"primaryKey"`
	Owner string `gorm:"index;not null"`
	Text  string `gorm:"type:text;not null"`

	DueAt time.Time `gorm:"index;not null"`
	Sent  bool      `gorm:"index;not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}
