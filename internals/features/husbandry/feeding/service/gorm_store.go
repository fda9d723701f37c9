package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
	housing "clutchly_backend/internals/features/husbandry/housing/model"
)

// gormStore is the production Store over PostgreSQL.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (g *gormStore) ScheduleByID(ctx context.Context, orgID, scheduleID uuid.UUID) (*m.FeedingScheduleModel, error) {
	var sched m.FeedingScheduleModel
	err := g.db.WithContext(ctx).
		Where("feeding_schedule_id = ? AND feeding_schedule_org_id = ?", scheduleID, orgID).
		First(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (g *gormStore) ActiveSchedules(ctx context.Context) ([]m.FeedingScheduleModel, error) {
	var schedules []m.FeedingScheduleModel
	err := g.db.WithContext(ctx).
		Where("feeding_schedule_is_active = TRUE").
		Find(&schedules).Error
	return schedules, err
}

func (g *gormStore) TargetsBySchedule(ctx context.Context, orgID, scheduleID uuid.UUID) ([]m.FeedingTargetModel, error) {
	var targets []m.FeedingTargetModel
	err := g.db.WithContext(ctx).
		Where("feeding_target_schedule_id = ? AND feeding_target_org_id = ?", scheduleID, orgID).
		Find(&targets).Error
	return targets, err
}

func (g *gormStore) SchedulesByTargetValues(ctx context.Context, orgID uuid.UUID, values []string) ([]m.FeedingScheduleModel, error) {
	if len(values) == 0 {
		return nil, nil
	}
	var schedules []m.FeedingScheduleModel
	err := g.db.WithContext(ctx).
		Joins("JOIN feeding_targets ON feeding_target_schedule_id = feeding_schedule_id").
		Where("feeding_schedule_org_id = ?", orgID).
		Where("feeding_target_type <> ?", m.TargetLevel).
		Where("feeding_target_value IN ?", values).
		Where("feeding_target_deleted_at IS NULL").
		Distinct("feeding_schedules.*").
		Find(&schedules).Error
	return schedules, err
}

func (g *gormStore) SchedulesByLevelTargetValue(ctx context.Context, orgID uuid.UUID, value string) ([]m.FeedingScheduleModel, error) {
	var schedules []m.FeedingScheduleModel
	err := g.db.WithContext(ctx).
		Joins("JOIN feeding_targets ON feeding_target_schedule_id = feeding_schedule_id").
		Where("feeding_schedule_org_id = ?", orgID).
		Where("feeding_target_type = ?", m.TargetLevel).
		Where("feeding_target_value = ?", value).
		Where("feeding_target_deleted_at IS NULL").
		Distinct("feeding_schedules.*").
		Find(&schedules).Error
	return schedules, err
}

func (g *gormStore) LocationByID(ctx context.Context, orgID, locationID uuid.UUID) (*housing.LocationModel, error) {
	var loc housing.LocationModel
	err := g.db.WithContext(ctx).
		Where("location_id = ? AND location_org_id = ?", locationID, orgID).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (g *gormStore) LocationIDsByRoomIDs(ctx context.Context, orgID uuid.UUID, roomIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Model(&housing.LocationModel{}).
		Where("location_org_id = ? AND location_room_id IN ?", orgID, roomIDs).
		Pluck("location_id", &ids).Error
	return ids, err
}

func (g *gormStore) LocationIDsByRackIDs(ctx context.Context, orgID uuid.UUID, rackIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Model(&housing.LocationModel{}).
		Where("location_org_id = ? AND location_rack_id IN ?", orgID, rackIDs).
		Pluck("location_id", &ids).Error
	return ids, err
}

func (g *gormStore) LocationIDsByRackLevels(ctx context.Context, orgID, rackID uuid.UUID, levels []int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Model(&housing.LocationModel{}).
		Where("location_org_id = ? AND location_rack_id = ? AND location_shelf_level IN ?", orgID, rackID, levels).
		Pluck("location_id", &ids).Error
	return ids, err
}

func (g *gormStore) ReptileIDsByLocationIDs(ctx context.Context, orgID uuid.UUID, locationIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Table("reptiles").
		Where("reptile_org_id = ? AND reptile_location_id IN ? AND reptile_deleted_at IS NULL", orgID, locationIDs).
		Pluck("reptile_id", &ids).Error
	return ids, err
}

func (g *gormStore) EventExists(ctx context.Context, orgID, scheduleID, reptileID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&m.FeedingEventModel{}).
		Where("feeding_event_org_id = ? AND feeding_event_schedule_id = ? AND feeding_event_reptile_id = ? AND feeding_event_scheduled_date = ?",
			orgID, scheduleID, reptileID, atMidnight(date)).
		Count(&count).Error
	return count > 0, err
}

func (g *gormStore) EventsByScheduleOnDate(ctx context.Context, orgID, scheduleID uuid.UUID, date time.Time) ([]m.FeedingEventModel, error) {
	var events []m.FeedingEventModel
	err := g.db.WithContext(ctx).
		Where("feeding_event_org_id = ? AND feeding_event_schedule_id = ? AND feeding_event_scheduled_date = ?",
			orgID, scheduleID, atMidnight(date)).
		Find(&events).Error
	return events, err
}

func (g *gormStore) EventsByScheduleInRange(ctx context.Context, orgID, scheduleID uuid.UUID, from, to time.Time) ([]m.FeedingEventModel, error) {
	var events []m.FeedingEventModel
	err := g.db.WithContext(ctx).
		Where("feeding_event_org_id = ? AND feeding_event_schedule_id = ?", orgID, scheduleID).
		Where("feeding_event_scheduled_date >= ? AND feeding_event_scheduled_date <= ?", atMidnight(from), atMidnight(to)).
		Find(&events).Error
	return events, err
}

func (g *gormStore) InsertEvents(ctx context.Context, events []m.FeedingEventModel) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	res := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "feeding_event_schedule_id"},
				{Name: "feeding_event_reptile_id"},
				{Name: "feeding_event_scheduled_date"},
			},
			DoNothing: true,
		}).
		Create(&events)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
