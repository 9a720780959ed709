package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jotbot/internal/store"

	"github.com/lib/pq"
)

const (
	replyNoTime = `Sorry, I couldn't figure out the time. Try something like "remind me to call Jane tomorrow at 10am".`
	replyNoTask = `I need both a task and a time. Try "remind me to <task> <time>".`
	replyNoTerm = `What should I search for? Try "find groceries".`

	replyNoNotes = "You don't have any notes saved yet. Send me any text and I'll save it as a note."

	replyHelp = `Here's what I can do:
- Send me any text and I'll save it as a note.
- "find <keyword>" or "search <keyword>" to search your notes.
- "show all notes" to see everything you've saved.
- "remind me to <task> <time>" and I'll message you when it's due.`

	dueTimeLayout = "Mon, Jan 2 at 3:04 PM"
)

// Executor runs classified commands against the store. Operations return a
// reply for the sender; only collaborator failures surface as errors —
// validation problems are answered in-band and never touch the store.
type Executor struct {
	Notes     NoteStore
	Reminders ReminderStore
	Resolver  Resolver

	// Now is the clock; nil means time.Now. Injected so tests can pin it.
	Now func() time.Time
}

func (e *Executor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Execute dispatches cmd on behalf of owner and returns the reply text.
func (e *Executor) Execute(ctx context.Context, cmd Command, owner string) (string, error) {
	switch cmd.Kind {
	case KindSetReminder:
		return e.setReminder(ctx, owner, cmd.Payload)
	case KindSearch:
		return e.search(ctx, owner, cmd.Payload)
	case KindListAll:
		return e.listAll(ctx, owner)
	case KindHelp:
		return replyHelp, nil
	default:
		return e.saveNote(ctx, owner, cmd.Payload)
	}
}

func (e *Executor) setReminder(ctx context.Context, owner, raw string) (string, error) {
	cands := e.Resolver.Resolve(raw, e.now())
	if len(cands) == 0 {
		return replyNoTime, nil
	}

	best := cands[0]
	task := strings.TrimSpace(raw[:best.Index] + raw[best.Index+len(best.Text):])
	if task == "" {
		// The whole text was the time expression; nothing to remind about.
		return replyNoTask, nil
	}

	rem := &store.Reminder{
		Owner:     owner,
		Text:      task,
		DueAt:     best.Time,
		Sent:      false,
		CreatedAt: e.now(),
	}
	if err := e.Reminders.Insert(ctx, rem); err != nil {
		return "", fmt.Errorf("saving reminder: %w", err)
	}

	return fmt.Sprintf("Got it! I'll remind you to %s on %s.",
		task, best.Time.Local().Format(dueTimeLayout)), nil
}

func (e *Executor) search(ctx context.Context, owner, term string) (string, error) {
	if term == "" {
		return replyNoTerm, nil
	}

	notes, err := e.Notes.ListByOwner(ctx, owner)
	if err != nil {
		return "", fmt.Errorf("listing notes: %w", err)
	}
	if len(notes) == 0 {
		return replyNoNotes, nil
	}

	// The store only filters by owner; substring matching happens here.
	lower := strings.ToLower(term)
	var matches []string
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Text), lower) {
			matches = append(matches, n.Text)
		}
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No notes matching %q.", term), nil
	}

	return fmt.Sprintf("Found %d note(s) matching %q:\n%s",
		len(matches), term, bulleted(matches)), nil
}

func (e *Executor) listAll(ctx context.Context, owner string) (string, error) {
	notes, err := e.Notes.ListByOwner(ctx, owner)
	if err != nil {
		return "", fmt.Errorf("listing notes: %w", err)
	}
	if len(notes) == 0 {
		return replyNoNotes, nil
	}

	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text)
	}
	return "Your notes:\n" + bulleted(texts), nil
}

func (e *Executor) saveNote(ctx context.Context, owner, text string) (string, error) {
	n := &store.Note{
		Owner:     owner,
		Text:      text,
		Tags:      pq.StringArray(store.ExtractTags(text)),
		CreatedAt: e.now(),
	}
	if err := e.Notes.Insert(ctx, n); err != nil {
		return "", fmt.Errorf("saving note: %w", err)
	}
	return "Saved your note: " + text, nil
}

func bulleted(texts []string) string {
	var b strings.Builder
	for i, t := range texts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(t)
	}
	return b.String()
}
