package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

type GenerateResult struct {
	Created  int      `json:"created"`
	Warnings []string `json:"warnings,omitempty"`
}

func newUnfedEvent(orgID, scheduleID, reptileID uuid.UUID, date time.Time) m.FeedingEventModel {
	return m.FeedingEventModel{
		FeedingEventOrgID:         orgID,
		FeedingEventScheduleID:    scheduleID,
		FeedingEventReptileID:     reptileID,
		FeedingEventScheduledDate: datatypes.Date(atMidnight(date)),
		FeedingEventFed:           false,
	}
}

type pairKey struct {
	reptileID uuid.UUID
	date      string
}

/* =======================================================
   Bulk generation
   ======================================================= */

// GenerateFromSchedule resolves the schedule's targets, expands its
// recurrence over the (given or derived) range and persists an unfed event
// for every (reptile × date) pair that does not already have one. The
// in-batch pair set plus the point reads guarantee a single invocation never
// stages a duplicate; the unique index catches concurrent invocations.
func (s *Service) GenerateFromSchedule(ctx context.Context, orgID, scheduleID uuid.UUID, endOverride *time.Time) (*GenerateResult, error) {
	sched, err := s.store.ScheduleByID(ctx, orgID, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}

	targets, err := s.store.TargetsBySchedule(ctx, orgID, scheduleID)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	reptileIDs, warnings := s.ResolveTargets(ctx, orgID, targets)
	if len(reptileIDs) == 0 {
		return nil, ErrNoReptiles
	}

	dates := ExpandSchedule(sched, endOverride)

	staged := make([]m.FeedingEventModel, 0, len(reptileIDs)*len(dates))
	seen := make(map[pairKey]struct{})
	for _, reptileID := range reptileIDs {
		for _, date := range dates {
			key := pairKey{reptileID: reptileID, date: date.Format(dateLayout)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			exists, err := s.store.EventExists(ctx, orgID, scheduleID, reptileID, date)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
			staged = append(staged, newUnfedEvent(orgID, scheduleID, reptileID, date))
		}
	}

	created := 0
	if len(staged) > 0 {
		created, err = s.store.InsertEvents(ctx, staged)
		if err != nil {
			return nil, err
		}
	}
	return &GenerateResult{Created: created, Warnings: warnings}, nil
}

/* =======================================================
   Today-only batch generation
   ======================================================= */

// CreateEventsForToday inserts unfed events for the given (already resolved)
// reptile list when today is a feeding day under the strict recurrence
// interpretation. A weekly schedule started two days ago on a different
// weekday creates nothing, regardless of the reptile list.
func (s *Service) CreateEventsForToday(ctx context.Context, orgID, scheduleID uuid.UUID, reptileIDs []uuid.UUID, today time.Time) (int, error) {
	sched, err := s.store.ScheduleByID(ctx, orgID, scheduleID)
	if err != nil {
		return 0, err
	}
	if sched == nil {
		return 0, ErrScheduleNotFound
	}

	if !isStrictFeedingDay(sched, today) {
		return 0, nil
	}

	staged := make([]m.FeedingEventModel, 0, len(reptileIDs))
	seen := make(map[uuid.UUID]struct{})
	for _, reptileID := range reptileIDs {
		if _, dup := seen[reptileID]; dup {
			continue
		}
		seen[reptileID] = struct{}{}

		exists, err := s.store.EventExists(ctx, orgID, scheduleID, reptileID, today)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		staged = append(staged, newUnfedEvent(orgID, scheduleID, reptileID, today))
	}

	if len(staged) == 0 {
		return 0, nil
	}
	return s.store.InsertEvents(ctx, staged)
}

/* =======================================================
   Daily job entry points
   ======================================================= */

// ActiveSchedules lists every active schedule across organizations,
// for the nightly materialization run.
func (s *Service) ActiveSchedules(ctx context.Context) ([]m.FeedingScheduleModel, error) {
	return s.store.ActiveSchedules(ctx)
}

// MaterializeScheduleForDate resolves the schedule's current targets and
// creates the day's events. Target resolution warnings are tolerated; the
// schedule still materializes for whatever reptiles did resolve.
func (s *Service) MaterializeScheduleForDate(ctx context.Context, sched *m.FeedingScheduleModel, today time.Time) (int, error) {
	orgID := sched.FeedingScheduleOrgID

	targets, err := s.store.TargetsBySchedule(ctx, orgID, sched.FeedingScheduleID)
	if err != nil {
		return 0, err
	}
	if len(targets) == 0 {
		return 0, nil
	}

	reptileIDs, _ := s.ResolveTargets(ctx, orgID, targets)
	if len(reptileIDs) == 0 {
		return 0, nil
	}
	return s.CreateEventsForToday(ctx, orgID, sched.FeedingScheduleID, reptileIDs, today)
}

/* =======================================================
   Location-change reactive generation
   ======================================================= */

// ReactToLocationChange runs when a reptile's location is set or changed.
// It resolves the location's room/rack/level ancestry, finds every schedule
// targeting the location or any ancestor, and evaluates TODAY ONLY under
// the reactive recurrence interpretation. Schedules targeting the reptile
// directly are not candidates; a move does not change their membership and
// the batch paths already cover them.
//
// The initial fed value is not always false: when every other reptile's
// event for that schedule/date is already fed, the newcomer's event is
// created pre-marked fed with fed_at stamped, so one late arrival does not
// flip an already completed day back to pending.
func (s *Service) ReactToLocationChange(ctx context.Context, orgID, reptileID, locationID uuid.UUID, today time.Time) (int, error) {
	loc, err := s.store.LocationByID(ctx, orgID, locationID)
	if err != nil {
		return 0, err
	}
	if loc == nil {
		return 0, nil
	}

	candidates := []string{
		loc.LocationID.String(),
		loc.LocationRoomID.String(),
	}
	if loc.LocationRackID != nil {
		candidates = append(candidates, loc.LocationRackID.String())
	}

	schedules, err := s.store.SchedulesByTargetValues(ctx, orgID, candidates)
	if err != nil {
		return 0, err
	}

	// Separate pass for level targets: their composite values cannot be
	// matched with the plain IN above.
	if loc.LocationRackID != nil && loc.LocationShelfLevel != nil {
		levelValue := LevelTargetValue(*loc.LocationRackID, *loc.LocationShelfLevel)
		levelSchedules, err := s.store.SchedulesByLevelTargetValue(ctx, orgID, levelValue)
		if err != nil {
			return 0, err
		}
		schedules = append(schedules, levelSchedules...)
	}

	created := 0
	processed := make(map[uuid.UUID]struct{})
	for i := range schedules {
		sched := &schedules[i]
		if _, dup := processed[sched.FeedingScheduleID]; dup {
			continue
		}
		processed[sched.FeedingScheduleID] = struct{}{}

		if !sched.FeedingScheduleIsActive {
			continue
		}
		if !isReactiveFeedingDay(sched, today) {
			continue
		}

		exists, err := s.store.EventExists(ctx, orgID, sched.FeedingScheduleID, reptileID, today)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		others, err := s.store.EventsByScheduleOnDate(ctx, orgID, sched.FeedingScheduleID, today)
		if err != nil {
			return created, err
		}
		allFed := len(others) > 0
		for _, ev := range others {
			if !ev.FeedingEventFed {
				allFed = false
				break
			}
		}

		ev := newUnfedEvent(orgID, sched.FeedingScheduleID, reptileID, today)
		if allFed {
			now := time.Now()
			ev.FeedingEventFed = true
			ev.FeedingEventFedAt = &now
		}

		n, err := s.store.InsertEvents(ctx, []m.FeedingEventModel{ev})
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}
