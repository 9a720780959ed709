package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHandleIncomingMessageReplies(t *testing.T) {
	exec := newTestExecutor(&fakeNotes{}, &fakeReminders{}, &fakeResolver{})
	svc := NewService(exec, zerolog.Nop())

	reply := svc.HandleIncomingMessage(context.Background(), owner, "  buy milk  ")
	if reply == "" {
		t.Fatal("empty reply")
	}
	if !strings.Contains(reply, "buy milk") {
		t.Errorf("reply %q does not echo the trimmed note", reply)
	}
}

func TestHandleIncomingMessageDegradesToApology(t *testing.T) {
	exec := newTestExecutor(&fakeNotes{insertErr: errors.New("store down")}, &fakeReminders{}, &fakeResolver{})
	svc := NewService(exec, zerolog.Nop())

	reply := svc.HandleIncomingMessage(context.Background(), owner, "buy milk")
	if reply == "" {
		t.Fatal("internal failure produced an empty reply")
	}
	if !strings.Contains(strings.ToLower(reply), "sorry") {
		t.Errorf("reply %q is not the generic failure message", reply)
	}
}
