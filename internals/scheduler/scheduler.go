package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	feedingsvc "clutchly_backend/internals/features/husbandry/feeding/service"
)

/* =======================================================
   Daily feeding materializer

   Every night at 00:05 local time each active schedule gets
   its events for the new day. Per-schedule failures are
   logged and skipped so one broken schedule never blocks
   the rest of the run.
   ======================================================= */

type Scheduler struct {
	cron    *cron.Cron
	service *feedingsvc.Service
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: feedingsvc.New(feedingsvc.NewGormStore(db)),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.RunDailyMaterialization(ctx, time.Now())
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("[SCHEDULER] feeding materializer registered (daily 00:05)")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunDailyMaterialization creates today's feeding events for every
// active schedule across all organizations.
func (s *Scheduler) RunDailyMaterialization(ctx context.Context, today time.Time) {
	schedules, err := s.service.ActiveSchedules(ctx)
	if err != nil {
		log.Printf("[SCHEDULER] failed to load active schedules: %v", err)
		return
	}

	created := 0
	for i := range schedules {
		sched := &schedules[i]
		n, err := s.service.MaterializeScheduleForDate(ctx, sched, today)
		if err != nil {
			log.Printf("[SCHEDULER] schedule %s: %v", sched.FeedingScheduleID, err)
			continue
		}
		created += n
	}
	log.Printf("[SCHEDULER] daily feeding run done: %d schedules, %d events created", len(schedules), created)
}
