// services/scheduler.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartReseedScheduler reseeds the database every interval until the returned
// scheduler is shut down. Runs never overlap; a failed run is logged and the
// next tick tries again.
func (s *SeedService) StartReseedScheduler(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reseed interval must be positive, got %s", interval)
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			res, err := s.Run(ctx)
			if err != nil {
				log.Printf("[Scheduler] ❌ Reseed failed: %v", err)
				return
			}
			log.Printf("[Scheduler] ✅ Reseeded %d cards, %d decks", res.Cards, res.Decks)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to register reseed job: %w", err)
	}

	sched.Start()
	log.Printf("🔁 Reseeding every %s", interval)
	return sched, nil
}
