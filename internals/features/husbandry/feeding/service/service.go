package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
	housing "clutchly_backend/internals/features/husbandry/housing/model"
)

/* =======================================================
   Errors
   ======================================================= */

var (
	ErrScheduleNotFound = errors.New("feeding schedule not found")
	ErrNoTargets        = errors.New("feeding schedule has no targets")
	ErrNoReptiles       = errors.New("no reptiles resolved for feeding schedule")
)

/* =======================================================
   Store is the persistence surface the feeding core needs.
   Controllers hand in the GORM-backed implementation; tests
   hand in a fake.
   ======================================================= */

type Store interface {
	ScheduleByID(ctx context.Context, orgID, scheduleID uuid.UUID) (*m.FeedingScheduleModel, error)
	ActiveSchedules(ctx context.Context) ([]m.FeedingScheduleModel, error)
	TargetsBySchedule(ctx context.Context, orgID, scheduleID uuid.UUID) ([]m.FeedingTargetModel, error)

	// Schedules whose targets match any of the given (type, value) pairs.
	// Level targets need the separate lookup because their values are
	// composite "<rackId>-<level>" strings.
	SchedulesByTargetValues(ctx context.Context, orgID uuid.UUID, values []string) ([]m.FeedingScheduleModel, error)
	SchedulesByLevelTargetValue(ctx context.Context, orgID uuid.UUID, value string) ([]m.FeedingScheduleModel, error)

	LocationByID(ctx context.Context, orgID, locationID uuid.UUID) (*housing.LocationModel, error)
	LocationIDsByRoomIDs(ctx context.Context, orgID uuid.UUID, roomIDs []uuid.UUID) ([]uuid.UUID, error)
	LocationIDsByRackIDs(ctx context.Context, orgID uuid.UUID, rackIDs []uuid.UUID) ([]uuid.UUID, error)
	LocationIDsByRackLevels(ctx context.Context, orgID, rackID uuid.UUID, levels []int) ([]uuid.UUID, error)
	ReptileIDsByLocationIDs(ctx context.Context, orgID uuid.UUID, locationIDs []uuid.UUID) ([]uuid.UUID, error)

	EventExists(ctx context.Context, orgID, scheduleID, reptileID uuid.UUID, date time.Time) (bool, error)
	EventsByScheduleOnDate(ctx context.Context, orgID, scheduleID uuid.UUID, date time.Time) ([]m.FeedingEventModel, error)
	EventsByScheduleInRange(ctx context.Context, orgID, scheduleID uuid.UUID, from, to time.Time) ([]m.FeedingEventModel, error)

	// InsertEvents persists the batch with ON CONFLICT DO NOTHING on
	// (schedule, reptile, scheduled_date) and reports rows actually created.
	InsertEvents(ctx context.Context, events []m.FeedingEventModel) (int, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}
