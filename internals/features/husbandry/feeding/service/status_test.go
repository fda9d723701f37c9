package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

func addEvent(store *fakeStore, orgID, scheduleID uuid.UUID, date time.Time, fed bool) {
	ev := m.FeedingEventModel{
		FeedingEventID:            uuid.New(),
		FeedingEventOrgID:         orgID,
		FeedingEventScheduleID:    scheduleID,
		FeedingEventReptileID:     uuid.New(),
		FeedingEventScheduledDate: datatypes.Date(date),
		FeedingEventFed:           fed,
	}
	if fed {
		now := time.Now()
		ev.FeedingEventFedAt = &now
	}
	store.events = append(store.events, ev)
}

func TestScheduleStatusZeroEvents(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, day(2026, time.January, 5))
	require.NoError(t, err)

	assert.Equal(t, 0, st.TotalEvents)
	assert.Equal(t, 0, st.Percentage, "no division by zero")
	assert.False(t, st.IsComplete, "an empty day is not a finished day")
}

func TestScheduleStatusPartialCompletion(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	today := day(2026, time.January, 5)
	addEvent(store, orgID, sched.FeedingScheduleID, today, true)
	addEvent(store, orgID, sched.FeedingScheduleID, today, true)
	addEvent(store, orgID, sched.FeedingScheduleID, today, false)
	addEvent(store, orgID, sched.FeedingScheduleID, today, false)

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, today)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", st.RelevantDate)
	assert.Equal(t, 4, st.TotalEvents)
	assert.Equal(t, 2, st.CompletedEvents)
	assert.Equal(t, 50, st.Percentage)
	assert.False(t, st.IsComplete)
}

func TestScheduleStatusComplete(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	today := day(2026, time.January, 5)
	addEvent(store, orgID, sched.FeedingScheduleID, today, true)

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, today)
	require.NoError(t, err)
	assert.Equal(t, 100, st.Percentage)
	assert.True(t, st.IsComplete)
}

func TestScheduleStatusWeeklyRelevantDate(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	// Weekly from Thursday Jan 1; asked on Saturday Jan 10 the relevant
	// round is Thursday Jan 8.
	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))
	addEvent(store, orgID, sched.FeedingScheduleID, day(2026, time.January, 8), true)

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, day(2026, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-08", st.RelevantDate)
	assert.Equal(t, 1, st.TotalEvents)
	assert.True(t, st.IsComplete)
}

func TestScheduleStatusWeeklyFallbackToRecentEvents(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))

	// No events on the computed Thursday; a reactive event from Saturday
	// exists within the last week.
	addEvent(store, orgID, sched.FeedingScheduleID, day(2026, time.January, 3), false)

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, day(2026, time.January, 6))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-03", st.RelevantDate, "falls back to the latest recent event day")
	assert.Equal(t, 1, st.TotalEvents)
}

func TestScheduleStatusNextFeedingDate(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, day(2026, time.January, 3))
	require.NoError(t, err)
	require.NotNil(t, st.NextFeedingDate)
	assert.Equal(t, "2026-01-08", *st.NextFeedingDate)
}

func TestScheduleStatusNextFeedingDateNilPastEnd(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))
	end := datatypes.Date(day(2026, time.January, 10))
	sched.FeedingScheduleEndDate = &end

	st, err := svc.ScheduleStatus(context.Background(), orgID, sched.FeedingScheduleID, day(2026, time.January, 9))
	require.NoError(t, err)
	assert.Nil(t, st.NextFeedingDate, "next Thursday would land past the end date")
}

func TestScheduleStatusUnknownSchedule(t *testing.T) {
	store := newFakeStore()
	svc := New(store)

	_, err := svc.ScheduleStatus(context.Background(), uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
