package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

type ScheduleStatus struct {
	ScheduleID      uuid.UUID `json:"schedule_id"`
	RelevantDate    string    `json:"relevant_date"`
	NextFeedingDate *string   `json:"next_feeding_date,omitempty"`
	TotalEvents     int       `json:"total_events"`
	CompletedEvents int       `json:"completed_events"`
	Percentage      int       `json:"percentage"`
	IsComplete      bool      `json:"is_complete"`
}

/* =======================================================
   Relevant-date resolution
   ======================================================= */

// relevantFeedingDate picks the date whose events represent "today's"
// feeding round for display purposes.
func relevantFeedingDate(s *m.FeedingScheduleModel, today time.Time) time.Time {
	today = atMidnight(today)
	start := atMidnight(s.StartDate())

	switch s.FeedingScheduleRecurrence {
	case m.RecurrenceDaily:
		return today

	case m.RecurrenceWeekly:
		// Today when it matches the start weekday, else the most recent
		// matching weekday.
		back := (int(today.Weekday()) - int(start.Weekday()) + 7) % 7
		return today.AddDate(0, 0, -back)

	case m.RecurrenceInterval:
		d := 0
		if s.FeedingScheduleIntervalDays != nil {
			d = *s.FeedingScheduleIntervalDays
		}
		if d <= 0 || today.Before(start) {
			return today
		}
		k := daysBetween(start, today) / d
		return start.AddDate(0, 0, k*d)

	case m.RecurrenceCustom:
		// Today when its weekday is in the set, else the nearest prior
		// matching day within the last week.
		set := map[time.Weekday]struct{}{}
		for _, wd := range s.CustomWeekdays() {
			set[wd] = struct{}{}
		}
		for back := 0; back <= 7; back++ {
			day := today.AddDate(0, 0, -back)
			if _, ok := set[day.Weekday()]; ok {
				return day
			}
		}
	}
	return today
}

// nextFeedingDate derives the next feeding day on or after today under the
// strict interpretation, nil when the schedule has already ended.
func nextFeedingDate(s *m.FeedingScheduleModel, today time.Time) *time.Time {
	today = atMidnight(today)
	start := atMidnight(s.StartDate())
	if today.Before(start) {
		today = start
	}

	// Step size is at most a week for every recurrence kind except
	// interval, which has its own bound.
	limit := 7
	if s.FeedingScheduleRecurrence == m.RecurrenceInterval {
		if s.FeedingScheduleIntervalDays == nil || *s.FeedingScheduleIntervalDays <= 0 {
			return nil
		}
		limit = *s.FeedingScheduleIntervalDays
	}

	for ahead := 0; ahead <= limit; ahead++ {
		day := today.AddDate(0, 0, ahead)
		if end := s.EndDate(); end != nil && day.After(endOfDay(*end)) {
			return nil
		}
		if isStrictFeedingDay(s, day) {
			return &day
		}
	}
	return nil
}

/* =======================================================
   Completion math
   ======================================================= */

// completion never divides by zero: 0 events means 0% and not complete.
func completion(events []m.FeedingEventModel) (total, completed, pct int, isComplete bool) {
	total = len(events)
	for _, ev := range events {
		if ev.FeedingEventFed {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0, false
	}
	pct = completed * 100 / total
	return total, completed, pct, completed == total
}

/* =======================================================
   Status Aggregator
   ======================================================= */

// ScheduleStatus reports the completion of the currently relevant feeding
// day. Weekly schedules with no events on the computed date fall back to
// the most recent event within the last 7 days (latest scheduled_date wins).
func (s *Service) ScheduleStatus(ctx context.Context, orgID, scheduleID uuid.UUID, today time.Time) (*ScheduleStatus, error) {
	sched, err := s.store.ScheduleByID(ctx, orgID, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}

	relevant := relevantFeedingDate(sched, today)
	events, err := s.store.EventsByScheduleOnDate(ctx, orgID, scheduleID, relevant)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 && sched.FeedingScheduleRecurrence == m.RecurrenceWeekly {
		recent, err := s.store.EventsByScheduleInRange(ctx, orgID, scheduleID,
			atMidnight(today).AddDate(0, 0, -7), atMidnight(today))
		if err != nil {
			return nil, err
		}
		if len(recent) > 0 {
			latest := recent[0].ScheduledDate()
			for _, ev := range recent[1:] {
				if ev.ScheduledDate().After(latest) {
					latest = ev.ScheduledDate()
				}
			}
			relevant = latest
			events = events[:0]
			for _, ev := range recent {
				if sameDate(ev.ScheduledDate(), latest) {
					events = append(events, ev)
				}
			}
		}
	}

	total, completed, pct, isComplete := completion(events)

	status := &ScheduleStatus{
		ScheduleID:      scheduleID,
		RelevantDate:    relevant.Format(dateLayout),
		TotalEvents:     total,
		CompletedEvents: completed,
		Percentage:      pct,
		IsComplete:      isComplete,
	}
	if next := nextFeedingDate(sched, today); next != nil {
		formatted := next.Format(dateLayout)
		status.NextFeedingDate = &formatted
	}
	return status, nil
}
