package db

import (
	"fmt"

	"jotbot/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&store.Note{},
		&store.Reminder{},
	); err != nil {
		return err
	}

	// Tag filter (GIN for text[])
	if err := gdb.Exec(`create index if not exists idx_notes_tags on notes using gin (tags);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_notes_owner_created on notes(owner, created_at);`,
		`create index if not exists idx_reminders_due on reminders(sent, due_at);`,
		`create index if not exists idx_reminders_owner on reminders(owner);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
