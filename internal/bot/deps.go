package bot

import (
	"context"
	"time"

	"jotbot/internal/store"
	"jotbot/internal/timeparse"
)

// NoteStore is the slice of the document store the executor needs for notes.
type NoteStore interface {
	Insert(ctx context.Context, n *store.Note) error
	ListByOwner(ctx context.Context, owner string) ([]store.Note, error)
}

// ReminderStore covers reminder persistence for the executor and the scanner.
type ReminderStore interface {
	Insert(ctx context.Context, rem *store.Reminder) error
	ListDue(ctx context.Context, now time.Time) ([]store.Reminder, error)
	MarkSent(ctx context.Context, id uint64) error
}

// Resolver extracts date/time candidates from free text, best match first.
type Resolver interface {
	Resolve(text string, base time.Time) []timeparse.Candidate
}

// Notifier delivers a text to a channel address. Fire and forget: a nil
// return means the transport accepted the message, nothing more.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}
