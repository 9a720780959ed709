package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier writes deliveries to the log instead of a real channel. Used
// when no Twilio credentials are configured (local development).
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n *LogNotifier) Send(_ context.Context, to, body string) error {
	n.Logger.Info().Str("to", to).Str("body", body).Msg("reminder dispatch")
	return nil
}
