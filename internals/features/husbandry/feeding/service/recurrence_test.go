package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(n int) *int              { return &n }

func TestExpandRecurrenceDaily(t *testing.T) {
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 10)

	dates := ExpandRecurrence(m.RecurrenceDaily, nil, nil, start, ptrTime(end))

	require.Len(t, dates, 10)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, end, dates[9], "end boundary is inclusive")
}

func TestExpandRecurrenceDailyDefaultsToThirtyDays(t *testing.T) {
	start := day(2026, time.March, 1)

	dates := ExpandRecurrence(m.RecurrenceDaily, nil, nil, start, nil)

	require.Len(t, dates, 31, "start plus 30 days ahead, inclusive")
	assert.Equal(t, day(2026, time.March, 31), dates[30])
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	// 2026-01-01 is a Thursday.
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 31)

	dates := ExpandRecurrence(m.RecurrenceWeekly, nil, nil, start, ptrTime(end))

	require.Len(t, dates, 5)
	for i, want := range []int{1, 8, 15, 22, 29} {
		assert.Equal(t, day(2026, time.January, want), dates[i])
		assert.Equal(t, time.Thursday, dates[i].Weekday())
	}
}

func TestExpandRecurrenceInterval(t *testing.T) {
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 10)

	dates := ExpandRecurrence(m.RecurrenceInterval, ptrInt(3), nil, start, ptrTime(end))

	require.Len(t, dates, 4)
	for i, want := range []int{1, 4, 7, 10} {
		assert.Equal(t, day(2026, time.January, want), dates[i])
	}
}

func TestExpandRecurrenceIntervalBadStep(t *testing.T) {
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 10)

	assert.Empty(t, ExpandRecurrence(m.RecurrenceInterval, nil, nil, start, ptrTime(end)))
	assert.Empty(t, ExpandRecurrence(m.RecurrenceInterval, ptrInt(0), nil, start, ptrTime(end)))
	assert.Empty(t, ExpandRecurrence(m.RecurrenceInterval, ptrInt(-2), nil, start, ptrTime(end)))
}

func TestExpandRecurrenceStartAfterEnd(t *testing.T) {
	start := day(2026, time.February, 10)
	end := day(2026, time.February, 1)

	assert.Empty(t, ExpandRecurrence(m.RecurrenceDaily, nil, nil, start, ptrTime(end)))
}

func TestExpandRecurrenceSingleDayRange(t *testing.T) {
	start := day(2026, time.January, 5)

	dates := ExpandRecurrence(m.RecurrenceDaily, nil, nil, start, ptrTime(start))

	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestExpandRecurrenceNormalizesTimeOfDay(t *testing.T) {
	// A late-evening start and an early-morning end must not drop
	// either boundary date.
	start := time.Date(2026, time.January, 1, 23, 30, 0, 0, time.Local)
	end := time.Date(2026, time.January, 3, 0, 15, 0, 0, time.Local)

	dates := ExpandRecurrence(m.RecurrenceDaily, nil, nil, start, ptrTime(end))

	require.Len(t, dates, 3)
	assert.Equal(t, day(2026, time.January, 1), dates[0])
	assert.Equal(t, day(2026, time.January, 3), dates[2])
}

func TestExpandRecurrenceCustomWeekdays(t *testing.T) {
	// Mondays and Thursdays through two weeks starting Thu 2026-01-01.
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 14)

	dates := ExpandRecurrence(m.RecurrenceCustom, nil,
		[]time.Weekday{time.Monday, time.Thursday}, start, ptrTime(end))

	require.Len(t, dates, 4)
	for i, want := range []int{1, 5, 8, 12} {
		assert.Equal(t, day(2026, time.January, want), dates[i])
	}
}

func TestExpandRecurrenceCustomNoDays(t *testing.T) {
	start := day(2026, time.January, 1)
	assert.Empty(t, ExpandRecurrence(m.RecurrenceCustom, nil, nil, start, ptrTime(day(2026, time.January, 31))))
}

func weeklySchedule(start time.Time) *m.FeedingScheduleModel {
	return &m.FeedingScheduleModel{
		FeedingScheduleRecurrence: m.RecurrenceWeekly,
		FeedingScheduleStartDate:  datatypes.Date(start),
		FeedingScheduleIsActive:   true,
	}
}

func TestWeeklyInterpretationsDiverge(t *testing.T) {
	start := day(2026, time.January, 1) // Thursday
	sched := weeklySchedule(start)

	saturday := day(2026, time.January, 3)

	assert.False(t, isStrictFeedingDay(sched, saturday),
		"batch generation skips non-matching weekdays")
	assert.True(t, isReactiveFeedingDay(sched, saturday),
		"a reptile moved in mid-week is fed immediately")

	nextThursday := day(2026, time.January, 8)
	assert.True(t, isStrictFeedingDay(sched, nextThursday))
	assert.True(t, isReactiveFeedingDay(sched, nextThursday))
}

func TestFeedingDayBeforeStart(t *testing.T) {
	sched := weeklySchedule(day(2026, time.June, 10))
	before := day(2026, time.June, 1)

	assert.False(t, isStrictFeedingDay(sched, before))
	assert.False(t, isReactiveFeedingDay(sched, before))
}

func TestFeedingDayAfterEnd(t *testing.T) {
	sched := weeklySchedule(day(2026, time.January, 1))
	end := datatypes.Date(day(2026, time.January, 15))
	sched.FeedingScheduleEndDate = &end

	after := day(2026, time.January, 22) // matching weekday, past end

	assert.False(t, isStrictFeedingDay(sched, after))
	assert.False(t, isReactiveFeedingDay(sched, after))
}

func TestFeedingDayAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	prev := time.Local
	time.Local = loc
	defer func() { time.Local = prev }()

	// Clocks spring forward on 2026-03-08, so the week from Thu 2026-03-05
	// to Thu 2026-03-12 spans only 167 hours.
	weekly := weeklySchedule(day(2026, time.March, 5))
	assert.True(t, isStrictFeedingDay(weekly, day(2026, time.March, 12)),
		"same weekday one week later is a feeding day even when the week loses an hour")
	assert.False(t, isStrictFeedingDay(weekly, day(2026, time.March, 11)))

	interval := &m.FeedingScheduleModel{
		FeedingScheduleRecurrence:   m.RecurrenceInterval,
		FeedingScheduleIntervalDays: ptrInt(3),
		FeedingScheduleStartDate:    datatypes.Date(day(2026, time.March, 5)),
		FeedingScheduleIsActive:     true,
	}
	assert.True(t, isStrictFeedingDay(interval, day(2026, time.March, 11)),
		"6 calendar days after start is an exact multiple of 3")
	assert.False(t, isStrictFeedingDay(interval, day(2026, time.March, 10)))

	// Fall back on 2026-11-01: the week from Thu 2026-10-29 gains an hour.
	autumn := weeklySchedule(day(2026, time.October, 29))
	assert.True(t, isStrictFeedingDay(autumn, day(2026, time.November, 5)))
	assert.False(t, isStrictFeedingDay(autumn, day(2026, time.November, 4)))
}

func TestIntervalFeedingDayExactMultiplesOnly(t *testing.T) {
	sched := &m.FeedingScheduleModel{
		FeedingScheduleRecurrence:   m.RecurrenceInterval,
		FeedingScheduleIntervalDays: ptrInt(3),
		FeedingScheduleStartDate:    datatypes.Date(day(2026, time.January, 1)),
		FeedingScheduleIsActive:     true,
	}

	assert.True(t, isStrictFeedingDay(sched, day(2026, time.January, 1)))
	assert.False(t, isStrictFeedingDay(sched, day(2026, time.January, 2)))
	assert.True(t, isStrictFeedingDay(sched, day(2026, time.January, 4)))
	assert.True(t, isReactiveFeedingDay(sched, day(2026, time.January, 4)),
		"interval semantics are identical in both interpretations")
	assert.False(t, isReactiveFeedingDay(sched, day(2026, time.January, 5)))
}
