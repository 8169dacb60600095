package processing

import (
	"context"
	"time"
)

// TimerSleeper waits on a real timer
type TimerSleeper struct{}

// Sleep blocks for d or until ctx is done
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
