package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Notes reads and writes Note rows.
type Notes struct {
	DB *gorm.DB
}

func (s *Notes) Insert(ctx context.Context, n *Note) error {
	return s.DB.WithContext(ctx).Create(n).Error
}

// ListByOwner returns every note owned by owner, oldest first. There is no
// store-side text filter; search narrows the result client-side.
func (s *Notes) ListByOwner(ctx context.Context, owner string) ([]Note, error) {
	var out []Note
	err := s.DB.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// Reminders reads and writes Reminder rows.
type Reminders struct {
	DB *gorm.DB
}

func (s *Reminders) Insert(ctx context.Context, rem *Reminder) error {
	return s.DB.WithContext(ctx).Create(rem).Error
}

// ListDue returns unsent reminders whose due time is at or before now.
func (s *Reminders) ListDue(ctx context.Context, now time.Time) ([]Reminder, error) {
	var out []Reminder
	err := s.DB.WithContext(ctx).
		Where("sent = false AND due_at <= ?", now).
		Order("due_at asc").
		Find(&out).Error
	return out, err
}

func (s *Reminders) MarkSent(ctx context.Context, id uint64) error {
	return s.DB.WithContext(ctx).Exec(`update reminders set sent=true where id=?`, id).Error
}
