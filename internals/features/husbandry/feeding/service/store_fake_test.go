package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
	housing "clutchly_backend/internals/features/husbandry/housing/model"
)

// fakeStore is the in-memory Store used by the service tests.
type fakeStore struct {
	schedules map[uuid.UUID]*m.FeedingScheduleModel
	targets   []m.FeedingTargetModel
	locations map[uuid.UUID]*housing.LocationModel

	// housing lookups
	locationsByRoom    map[uuid.UUID][]uuid.UUID
	locationsByRack    map[uuid.UUID][]uuid.UUID
	locationsByLevel   map[string][]uuid.UUID // key: "<rackId>-<level>"
	reptilesByLocation map[uuid.UUID][]uuid.UUID

	events []m.FeedingEventModel

	// set to force sub-query failures
	failReptileLookups bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		schedules:          map[uuid.UUID]*m.FeedingScheduleModel{},
		locations:          map[uuid.UUID]*housing.LocationModel{},
		locationsByRoom:    map[uuid.UUID][]uuid.UUID{},
		locationsByRack:    map[uuid.UUID][]uuid.UUID{},
		locationsByLevel:   map[string][]uuid.UUID{},
		reptilesByLocation: map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeStore) ScheduleByID(_ context.Context, orgID, scheduleID uuid.UUID) (*m.FeedingScheduleModel, error) {
	s, ok := f.schedules[scheduleID]
	if !ok || s.FeedingScheduleOrgID != orgID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStore) ActiveSchedules(context.Context) ([]m.FeedingScheduleModel, error) {
	var out []m.FeedingScheduleModel
	for _, s := range f.schedules {
		if s.FeedingScheduleIsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) TargetsBySchedule(_ context.Context, orgID, scheduleID uuid.UUID) ([]m.FeedingTargetModel, error) {
	var out []m.FeedingTargetModel
	for _, t := range f.targets {
		if t.FeedingTargetOrgID == orgID && t.FeedingTargetScheduleID == scheduleID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) SchedulesByTargetValues(_ context.Context, orgID uuid.UUID, values []string) ([]m.FeedingScheduleModel, error) {
	want := map[string]struct{}{}
	for _, v := range values {
		want[v] = struct{}{}
	}
	var out []m.FeedingScheduleModel
	seen := map[uuid.UUID]struct{}{}
	for _, t := range f.targets {
		if t.FeedingTargetOrgID != orgID || t.FeedingTargetType == m.TargetLevel {
			continue
		}
		if _, ok := want[t.FeedingTargetValue]; !ok {
			continue
		}
		if _, dup := seen[t.FeedingTargetScheduleID]; dup {
			continue
		}
		seen[t.FeedingTargetScheduleID] = struct{}{}
		if s, ok := f.schedules[t.FeedingTargetScheduleID]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) SchedulesByLevelTargetValue(_ context.Context, orgID uuid.UUID, value string) ([]m.FeedingScheduleModel, error) {
	var out []m.FeedingScheduleModel
	for _, t := range f.targets {
		if t.FeedingTargetOrgID != orgID || t.FeedingTargetType != m.TargetLevel {
			continue
		}
		if t.FeedingTargetValue != value {
			continue
		}
		if s, ok := f.schedules[t.FeedingTargetScheduleID]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) LocationByID(_ context.Context, orgID, locationID uuid.UUID) (*housing.LocationModel, error) {
	loc, ok := f.locations[locationID]
	if !ok || loc.LocationOrgID != orgID {
		return nil, nil
	}
	return loc, nil
}

func (f *fakeStore) LocationIDsByRoomIDs(_ context.Context, _ uuid.UUID, roomIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range roomIDs {
		out = append(out, f.locationsByRoom[id]...)
	}
	return out, nil
}

func (f *fakeStore) LocationIDsByRackIDs(_ context.Context, _ uuid.UUID, rackIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range rackIDs {
		out = append(out, f.locationsByRack[id]...)
	}
	return out, nil
}

func (f *fakeStore) LocationIDsByRackLevels(_ context.Context, _ uuid.UUID, rackID uuid.UUID, levels []int) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, lvl := range levels {
		out = append(out, f.locationsByLevel[LevelTargetValue(rackID, lvl)]...)
	}
	return out, nil
}

func (f *fakeStore) ReptileIDsByLocationIDs(_ context.Context, _ uuid.UUID, locationIDs []uuid.UUID) ([]uuid.UUID, error) {
	if f.failReptileLookups {
		return nil, fmt.Errorf("reptile lookup unavailable")
	}
	var out []uuid.UUID
	for _, id := range locationIDs {
		out = append(out, f.reptilesByLocation[id]...)
	}
	return out, nil
}

func (f *fakeStore) EventExists(_ context.Context, orgID, scheduleID, reptileID uuid.UUID, date time.Time) (bool, error) {
	for _, ev := range f.events {
		if ev.FeedingEventOrgID == orgID &&
			ev.FeedingEventScheduleID == scheduleID &&
			ev.FeedingEventReptileID == reptileID &&
			sameDate(ev.ScheduledDate(), date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EventsByScheduleOnDate(_ context.Context, orgID, scheduleID uuid.UUID, date time.Time) ([]m.FeedingEventModel, error) {
	var out []m.FeedingEventModel
	for _, ev := range f.events {
		if ev.FeedingEventOrgID == orgID &&
			ev.FeedingEventScheduleID == scheduleID &&
			sameDate(ev.ScheduledDate(), date) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeStore) EventsByScheduleInRange(_ context.Context, orgID, scheduleID uuid.UUID, from, to time.Time) ([]m.FeedingEventModel, error) {
	var out []m.FeedingEventModel
	for _, ev := range f.events {
		if ev.FeedingEventOrgID != orgID || ev.FeedingEventScheduleID != scheduleID {
			continue
		}
		d := atMidnight(ev.ScheduledDate())
		if !d.Before(atMidnight(from)) && !d.After(atMidnight(to)) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// InsertEvents mirrors the ON CONFLICT DO NOTHING behavior of the real store.
func (f *fakeStore) InsertEvents(_ context.Context, events []m.FeedingEventModel) (int, error) {
	created := 0
	for _, ev := range events {
		dup := false
		for _, existing := range f.events {
			if existing.FeedingEventScheduleID == ev.FeedingEventScheduleID &&
				existing.FeedingEventReptileID == ev.FeedingEventReptileID &&
				sameDate(existing.ScheduledDate(), ev.ScheduledDate()) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if ev.FeedingEventID == uuid.Nil {
			ev.FeedingEventID = uuid.New()
		}
		f.events = append(f.events, ev)
		created++
	}
	return created, nil
}
