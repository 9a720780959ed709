package bot

import (
	"context"
	"sync"
	"time"

	"jotbot/internal/store"
	"jotbot/internal/timeparse"
)

type fakeNotes struct {
	mu        sync.Mutex
	notes     []store.Note
	insertErr error
	listErr   error
	listCalls int
}

func (f *fakeNotes) Insert(_ context.Context, n *store.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	n.ID = uint64(len(f.notes) + 1)
	f.notes = append(f.notes, *n)
	return nil
}

func (f *fakeNotes) ListByOwner(_ context.Context, owner string) ([]store.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Note
	for _, n := range f.notes {
		if n.Owner == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeReminders struct {
	mu        sync.Mutex
	reminders []store.Reminder
	insertErr error
	listErr   error
	markErr   error
}

func (f *fakeReminders) Insert(_ context.Context, rem *store.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	rem.ID = uint64(len(f.reminders) + 1)
	f.reminders = append(f.reminders, *rem)
	return nil
}

func (f *fakeReminders) ListDue(_ context.Context, now time.Time) ([]store.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Reminder
	for _, r := range f.reminders {
		if !r.Sent && !r.DueAt.After(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminders) MarkSent(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].Sent = true
			return nil
		}
	}
	return nil
}

func (f *fakeReminders) byID(id uint64) store.Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reminders {
		if r.ID == id {
			return r
		}
	}
	return store.Reminder{}
}

type delivery struct {
	To   string
	Body string
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []delivery
	failTo map[string]error
}

func (f *fakeNotifier) Send(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failTo[to]; ok {
		return err
	}
	f.sent = append(f.sent, delivery{To: to, Body: body})
	return nil
}

func (f *fakeNotifier) deliveries() []delivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]delivery(nil), f.sent...)
}

type fakeResolver struct {
	cands []timeparse.Candidate
}

func (f *fakeResolver) Resolve(_ string, _ time.Time) []timeparse.Candidate {
	return f.cands
}
