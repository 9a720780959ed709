package bot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const deliveryPrefix = "🔔 Reminder: "

// ScanResult summarizes one due-reminder scan.
type ScanResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

// Scanner finds due, unsent reminders and delivers them. Delivery and the
// sent-flag update are two separate writes with no transaction between them:
// if the process dies after Send but before MarkSent, the next scan delivers
// again. That at-least-once tradeoff is deliberate — marking before sending
// would risk losing reminders instead, which is worse.
type Scanner struct {
	Reminders ReminderStore
	Notifier  Notifier
	Logger    zerolog.Logger
}

// RunScan delivers every reminder due at or before now. Reminders are
// processed independently: one failed delivery never blocks the rest, and a
// failed item keeps sent=false so a later scan retries it. Only a failure of
// the due query itself fails the call.
func (s *Scanner) RunScan(ctx context.Context, now time.Time) (ScanResult, error) {
	due, err := s.Reminders.ListDue(ctx, now)
	if err != nil {
		return ScanResult{}, fmt.Errorf("listing due reminders: %w", err)
	}
	if len(due) == 0 {
		return ScanResult{}, nil
	}

	var succeeded atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(8)

	for _, rem := range due {
		rem := rem
		// Goroutines handle their own failures and always return nil, so a
		// bad item cannot cancel its siblings.
		g.Go(func() error {
			if err := s.Notifier.Send(ctx, rem.Owner, deliveryPrefix+rem.Text); err != nil {
				s.Logger.Warn().Err(err).
					Uint64("reminder_id", rem.ID).
					Str("owner", rem.Owner).
					Msg("reminder delivery failed, will retry next scan")
				return nil
			}
			// Mark only after a successful send.
			if err := s.Reminders.MarkSent(ctx, rem.ID); err != nil {
				s.Logger.Error().Err(err).
					Uint64("reminder_id", rem.ID).
					Msg("delivered but could not mark sent, next scan may redeliver")
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return ScanResult{Attempted: len(due), Succeeded: int(succeeded.Load())}, nil
}

// Run drives RunScan on a ticker until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := s.RunScan(ctx, time.Now())
			if err != nil {
				s.Logger.Error().Err(err).Msg("reminder scan failed")
				continue
			}
			if res.Attempted > 0 {
				s.Logger.Info().
					Int("attempted", res.Attempted).
					Int("succeeded", res.Succeeded).
					Msg("reminder scan complete")
			}
		}
	}
}
