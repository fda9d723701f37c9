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
	housing "clutchly_backend/internals/features/husbandry/housing/model"
)

func seedSchedule(store *fakeStore, orgID uuid.UUID, rec m.Recurrence, start time.Time) *m.FeedingScheduleModel {
	sched := &m.FeedingScheduleModel{
		FeedingScheduleID:         uuid.New(),
		FeedingScheduleOrgID:      orgID,
		FeedingScheduleName:       "test schedule",
		FeedingScheduleRecurrence: rec,
		FeedingScheduleStartDate:  datatypes.Date(start),
		FeedingScheduleIsActive:   true,
	}
	store.schedules[sched.FeedingScheduleID] = sched
	return sched
}

func addTarget(store *fakeStore, orgID uuid.UUID, scheduleID uuid.UUID, typ m.TargetType, value string) {
	store.targets = append(store.targets, m.FeedingTargetModel{
		FeedingTargetID:         uuid.New(),
		FeedingTargetOrgID:      orgID,
		FeedingTargetScheduleID: scheduleID,
		FeedingTargetType:       typ,
		FeedingTargetValue:      value,
	})
}

/* =======================================================
   GenerateFromSchedule
   ======================================================= */

func TestGenerateFromScheduleCreatesPairGrid(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	start := day(2026, time.January, 1)
	end := day(2026, time.January, 3)
	sched := seedSchedule(store, orgID, m.RecurrenceDaily, start)
	endDate := datatypes.Date(end)
	sched.FeedingScheduleEndDate = &endDate

	repA := uuid.New()
	repB := uuid.New()
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, repA.String())
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, repB.String())

	res, err := svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Created, "2 reptiles x 3 days")
	assert.Empty(t, res.Warnings)

	for _, ev := range store.events {
		assert.False(t, ev.FeedingEventFed, "generated events start unfed")
		assert.Nil(t, ev.FeedingEventFedAt)
	}
}

func TestGenerateFromScheduleIsIdempotent(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	endDate := datatypes.Date(day(2026, time.January, 2))
	sched.FeedingScheduleEndDate = &endDate
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, uuid.New().String())

	first, err := svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created, "rerun creates nothing new")
	assert.Len(t, store.events, 2)
}

func TestGenerateFromScheduleOverlappingTargetsStageOnce(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	endDate := datatypes.Date(day(2026, time.January, 1))
	sched.FeedingScheduleEndDate = &endDate

	// The same reptile is targeted directly and via its location.
	rep := uuid.New()
	locID := uuid.New()
	store.reptilesByLocation[locID] = []uuid.UUID{rep}
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, rep.String())
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLocation, locID.String())

	res, err := svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
}

func TestGenerateFromScheduleSentinels(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	_, err := svc.GenerateFromSchedule(context.Background(), orgID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	_, err = svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	assert.ErrorIs(t, err, ErrNoTargets)

	// A location target that resolves to nobody.
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLocation, uuid.New().String())
	_, err = svc.GenerateFromSchedule(context.Background(), orgID, sched.FeedingScheduleID, nil)
	assert.ErrorIs(t, err, ErrNoReptiles)
}

/* =======================================================
   CreateEventsForToday (strict)
   ======================================================= */

func TestCreateEventsForTodayOnFeedingDay(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	reps := []uuid.UUID{uuid.New(), uuid.New()}

	created, err := svc.CreateEventsForToday(context.Background(), orgID, sched.FeedingScheduleID, reps, day(2026, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestCreateEventsForTodayWeeklyOffDayCreatesNothing(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	// Weekly schedule started two days ago: today is not the start weekday.
	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))

	created, err := svc.CreateEventsForToday(context.Background(), orgID, sched.FeedingScheduleID,
		[]uuid.UUID{uuid.New()}, day(2026, time.January, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Empty(t, store.events)
}

func TestCreateEventsForTodaySkipsExisting(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	rep := uuid.New()
	today := day(2026, time.January, 5)

	store.events = append(store.events, m.FeedingEventModel{
		FeedingEventID:            uuid.New(),
		FeedingEventOrgID:         orgID,
		FeedingEventScheduleID:    sched.FeedingScheduleID,
		FeedingEventReptileID:     rep,
		FeedingEventScheduledDate: datatypes.Date(today),
	})

	created, err := svc.CreateEventsForToday(context.Background(), orgID, sched.FeedingScheduleID,
		[]uuid.UUID{rep, rep}, today)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

/* =======================================================
   ReactToLocationChange (reactive)
   ======================================================= */

func seedLocation(store *fakeStore, orgID uuid.UUID) *housing.LocationModel {
	loc := &housing.LocationModel{
		LocationID:     uuid.New(),
		LocationOrgID:  orgID,
		LocationRoomID: uuid.New(),
		LocationLabel:  "tub 12",
	}
	store.locations[loc.LocationID] = loc
	return loc
}

func TestReactToLocationChangeWeeklyMidWeek(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	// Weekly schedule started Thursday, reptile moves in on Saturday.
	sched := seedSchedule(store, orgID, m.RecurrenceWeekly, day(2026, time.January, 1))
	loc := seedLocation(store, orgID)
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLocation, loc.LocationID.String())

	rep := uuid.New()
	created, err := svc.ReactToLocationChange(context.Background(), orgID, rep, loc.LocationID, day(2026, time.January, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, created, "reactive weekly fires on any day from start")

	require.Len(t, store.events, 1)
	assert.Equal(t, rep, store.events[0].FeedingEventReptileID)
	assert.False(t, store.events[0].FeedingEventFed)
}

func TestReactToLocationChangeInheritsFedFromHerd(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	loc := seedLocation(store, orgID)
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLocation, loc.LocationID.String())

	today := day(2026, time.January, 5)
	now := time.Now()
	for i := 0; i < 2; i++ {
		store.events = append(store.events, m.FeedingEventModel{
			FeedingEventID:            uuid.New(),
			FeedingEventOrgID:         orgID,
			FeedingEventScheduleID:    sched.FeedingScheduleID,
			FeedingEventReptileID:     uuid.New(),
			FeedingEventScheduledDate: datatypes.Date(today),
			FeedingEventFed:           true,
			FeedingEventFedAt:         &now,
		})
	}

	newcomer := uuid.New()
	created, err := svc.ReactToLocationChange(context.Background(), orgID, newcomer, loc.LocationID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var ev *m.FeedingEventModel
	for i := range store.events {
		if store.events[i].FeedingEventReptileID == newcomer {
			ev = &store.events[i]
		}
	}
	require.NotNil(t, ev)
	assert.True(t, ev.FeedingEventFed, "joins an already completed day as fed")
	assert.NotNil(t, ev.FeedingEventFedAt)
}

func TestReactToLocationChangeStaysUnfedWhenHerdPending(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	loc := seedLocation(store, orgID)
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLocation, loc.LocationID.String())

	today := day(2026, time.January, 5)
	store.events = append(store.events, m.FeedingEventModel{
		FeedingEventID:            uuid.New(),
		FeedingEventOrgID:         orgID,
		FeedingEventScheduleID:    sched.FeedingScheduleID,
		FeedingEventReptileID:     uuid.New(),
		FeedingEventScheduledDate: datatypes.Date(today),
		FeedingEventFed:           false,
	})

	newcomer := uuid.New()
	created, err := svc.ReactToLocationChange(context.Background(), orgID, newcomer, loc.LocationID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	for _, ev := range store.events {
		if ev.FeedingEventReptileID == newcomer {
			assert.False(t, ev.FeedingEventFed)
			assert.Nil(t, ev.FeedingEventFedAt)
		}
	}
}

func TestReactToLocationChangeSkipsInactiveAndExisting(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	loc := seedLocation(store, orgID)
	today := day(2026, time.January, 5)
	rep := uuid.New()

	inactive := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	inactive.FeedingScheduleIsActive = false
	addTarget(store, orgID, inactive.FeedingScheduleID, m.TargetLocation, loc.LocationID.String())

	active := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	addTarget(store, orgID, active.FeedingScheduleID, m.TargetLocation, loc.LocationID.String())
	store.events = append(store.events, m.FeedingEventModel{
		FeedingEventID:            uuid.New(),
		FeedingEventOrgID:         orgID,
		FeedingEventScheduleID:    active.FeedingScheduleID,
		FeedingEventReptileID:     rep,
		FeedingEventScheduledDate: datatypes.Date(today),
	})

	created, err := svc.ReactToLocationChange(context.Background(), orgID, rep, loc.LocationID, today)
	require.NoError(t, err)
	assert.Equal(t, 0, created, "inactive schedule skipped, existing event kept")
}

func TestReactToLocationChangeIgnoresDirectReptileTargets(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	rep := uuid.New()
	loc := seedLocation(store, orgID)

	// The schedule names the reptile itself, not any housing node, so a
	// move into an untargeted location must not materialize anything.
	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, rep.String())

	created, err := svc.ReactToLocationChange(context.Background(), orgID, rep, loc.LocationID, day(2026, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Empty(t, store.events)
}

func TestReactToLocationChangeLevelTarget(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	rackID := uuid.New()
	level := 2
	loc := seedLocation(store, orgID)
	loc.LocationRackID = &rackID
	loc.LocationShelfLevel = &level

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetLevel, LevelTargetValue(rackID, level))

	// A schedule for a different shelf of the same rack must not fire.
	other := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	addTarget(store, orgID, other.FeedingScheduleID, m.TargetLevel, LevelTargetValue(rackID, 5))

	rep := uuid.New()
	created, err := svc.ReactToLocationChange(context.Background(), orgID, rep, loc.LocationID, day(2026, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, store.events, 1)
	assert.Equal(t, sched.FeedingScheduleID, store.events[0].FeedingEventScheduleID)
}

/* =======================================================
   Daily job entry point
   ======================================================= */

func TestMaterializeScheduleForDate(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	sched := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	rep := uuid.New()
	addTarget(store, orgID, sched.FeedingScheduleID, m.TargetReptile, rep.String())

	created, err := svc.MaterializeScheduleForDate(context.Background(), sched, day(2026, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// No targets means a quiet no-op, not an error, for the nightly run.
	bare := seedSchedule(store, orgID, m.RecurrenceDaily, day(2026, time.January, 1))
	created, err = svc.MaterializeScheduleForDate(context.Background(), bare, day(2026, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}
