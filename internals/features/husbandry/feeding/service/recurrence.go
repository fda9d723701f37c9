package service

import (
	"math"
	"time"

	"github.com/teambition/rrule-go"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

const dateLayout = "2006-01-02"

// Open-ended schedules are expanded 30 days ahead.
const defaultExpansionDays = 30

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// daysBetween counts calendar days from a to b, both taken at local
// midnight. Rounding absorbs the 23h and 25h days around DST transitions;
// truncation would measure a spring-forward week as 6 days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(atMidnight(b).Sub(atMidnight(a)).Hours() / 24))
}

// ExpandRecurrence produces the ordered ascending set of feeding dates,
// inclusive of both boundaries. The start is normalized to local midnight
// and the end to local end-of-day so a time-of-day component never drops a
// boundary date. start > end yields an empty list, as does an interval
// recurrence with a missing or non-positive step.
func ExpandRecurrence(rec m.Recurrence, intervalDays *int, customDays []time.Weekday, startDate time.Time, endDate *time.Time) []time.Time {
	start := atMidnight(startDate)

	var end time.Time
	if endDate == nil {
		end = endOfDay(start.AddDate(0, 0, defaultExpansionDays))
	} else {
		end = endOfDay(*endDate)
	}
	if start.After(end) {
		return nil
	}

	opt := rrule.ROption{Dtstart: start, Until: end}
	switch rec {
	case m.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case m.RecurrenceWeekly:
		// Every 7th day from start, on the start weekday only.
		opt.Freq = rrule.WEEKLY
	case m.RecurrenceInterval:
		if intervalDays == nil || *intervalDays <= 0 {
			return nil
		}
		opt.Freq = rrule.DAILY
		opt.Interval = *intervalDays
	case m.RecurrenceCustom:
		if len(customDays) == 0 {
			return nil
		}
		opt.Freq = rrule.WEEKLY
		for _, wd := range customDays {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[wd])
		}
	default:
		return nil
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil
	}

	occurrences := r.All()
	dates := make([]time.Time, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, atMidnight(occ))
	}
	return dates
}

// ExpandSchedule expands a stored schedule, optionally overriding its end.
func ExpandSchedule(s *m.FeedingScheduleModel, endOverride *time.Time) []time.Time {
	end := endOverride
	if end == nil {
		end = s.EndDate()
	}
	return ExpandRecurrence(s.FeedingScheduleRecurrence, s.FeedingScheduleIntervalDays, s.CustomWeekdays(), s.StartDate(), end)
}

// isStrictFeedingDay is the literal recurrence interpretation used by
// today-only batch generation and the cron job: weekly fires only on the
// start's weekday, interval only on exact multiples of the step.
func isStrictFeedingDay(s *m.FeedingScheduleModel, today time.Time) bool {
	days := daysBetween(s.StartDate(), today)
	if days < 0 {
		return false
	}
	if end := s.EndDate(); end != nil && atMidnight(today).After(endOfDay(*end)) {
		return false
	}

	switch s.FeedingScheduleRecurrence {
	case m.RecurrenceDaily:
		return true
	case m.RecurrenceWeekly:
		return days%7 == 0
	case m.RecurrenceInterval:
		d := 0
		if s.FeedingScheduleIntervalDays != nil {
			d = *s.FeedingScheduleIntervalDays
		}
		return d > 0 && days%d == 0
	case m.RecurrenceCustom:
		for _, wd := range s.CustomWeekdays() {
			if today.Weekday() == wd {
				return true
			}
		}
	}
	return false
}

// isReactiveFeedingDay is the interpretation used when a reptile moves into
// a targeted location. Weekly schedules treat every day from the start
// onward as a feeding day here, so a newly housed reptile joins the group
// immediately instead of waiting for the next matching weekday.
func isReactiveFeedingDay(s *m.FeedingScheduleModel, today time.Time) bool {
	days := daysBetween(s.StartDate(), today)
	if days < 0 {
		return false
	}
	if end := s.EndDate(); end != nil && atMidnight(today).After(endOfDay(*end)) {
		return false
	}

	switch s.FeedingScheduleRecurrence {
	case m.RecurrenceDaily, m.RecurrenceWeekly:
		return true
	case m.RecurrenceInterval:
		d := 0
		if s.FeedingScheduleIntervalDays != nil {
			d = *s.FeedingScheduleIntervalDays
		}
		return d > 0 && days%d == 0
	case m.RecurrenceCustom:
		for _, wd := range s.CustomWeekdays() {
			if today.Weekday() == wd {
				return true
			}
		}
	}
	return false
}
