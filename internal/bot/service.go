package bot

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

const replyFailure = "Sorry, something went wrong on my end. Please try again in a moment."

// Service is the message boundary: it classifies, executes, and guarantees
// the sender always gets exactly one reply. Collaborator failures are caught
// here — once — and rendered as a generic apology.
type Service struct {
	exec   *Executor
	logger zerolog.Logger
}

func NewService(exec *Executor, logger zerolog.Logger) *Service {
	return &Service{exec: exec, logger: logger}
}

// HandleIncomingMessage routes one inbound message and returns the reply.
// It never fails outward.
func (s *Service) HandleIncomingMessage(ctx context.Context, from, body string) string {
	cmd := Classify(strings.TrimSpace(body))

	reply, err := s.exec.Execute(ctx, cmd, from)
	if err != nil {
		s.logger.Error().Err(err).
			Str("from", from).
			Str("command", cmd.Kind.String()).
			Msg("command execution failed")
		return replyFailure
	}
	return reply
}
