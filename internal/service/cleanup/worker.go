package cleanup

import (
	"context"
	"log"
	"time"
)

// Sweeper is the part of the session manager the worker needs
type Sweeper interface {
	CleanupOldSessions(finishedTTL, staleTTL time.Duration) int
}

type Worker struct {
	Sessions    Sweeper
	Interval    time.Duration
	FinishedTTL time.Duration
	StaleTTL    time.Duration
}

const defaultInterval = 10 * time.Minute

func NewWorker(sessions Sweeper, interval, finishedTTL, staleTTL time.Duration) *Worker {
	if interval <= 0 {
		log.Printf("[CLEANUP] Invalid interval %v, using %v", interval, defaultInterval)
		interval = defaultInterval
	}

	return &Worker{
		Sessions:    sessions,
		Interval:    interval,
		FinishedTTL: finishedTTL,
		StaleTTL:    staleTTL,
	}
}

// Start runs one sweep right away and then one per interval until ctx is done
func (w *Worker) Start(ctx context.Context) {
	log.Println("[CLEANUP] Background worker started")

	w.RunOnce()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

func (w *Worker) RunOnce() int {
	removed := w.Sessions.CleanupOldSessions(w.FinishedTTL, w.StaleTTL)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d expired games", removed)
	}
	return removed
}
