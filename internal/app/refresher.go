package app

import (
	"context"
	"time"

	"bookdesk/internal/actions"
)

// StartRefresher launches a background goroutine that re-fetches both
// collections at a fixed cadence. It returns immediately.
//
// The refresher is off by default: every mutation already reconciles the
// affected collections, and a background refresh clears any visible error
// banner when it begins. Enabling it trades that for catching changes made
// by other clients of the same server.
func StartRefresher(ctx context.Context, coord *actions.Coordinator, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			coord.RefreshAll(ctx)
		}
	}()
}
