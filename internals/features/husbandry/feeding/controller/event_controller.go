package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/husbandry/feeding/dto"
	m "clutchly_backend/internals/features/husbandry/feeding/model"
	helper "clutchly_backend/internals/helpers"
)

type FeedingEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeedingEventController(db *gorm.DB) *FeedingEventController {
	return &FeedingEventController{DB: db, Validate: validator.New()}
}

type listEventsQuery struct {
	ScheduleID string `query:"schedule_id"`
	ReptileID  string `query:"reptile_id"`
	OnDate     string `query:"on_date"` // YYYY-MM-DD
	From       string `query:"from"`
	To         string `query:"to"`
	Fed        *bool  `query:"fed"`
}

func parseDateParam(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func (ctl *FeedingEventController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q listEventsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.FeedingEventModel{}).
		Where("feeding_event_org_id = ?", orgID)

	if q.ScheduleID != "" {
		if _, err := uuid.Parse(q.ScheduleID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "schedule_id invalid")
		}
		db = db.Where("feeding_event_schedule_id = ?", q.ScheduleID)
	}
	if q.ReptileID != "" {
		if _, err := uuid.Parse(q.ReptileID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "reptile_id invalid")
		}
		db = db.Where("feeding_event_reptile_id = ?", q.ReptileID)
	}
	if q.OnDate != "" {
		dt, err := parseDateParam(q.OnDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "on_date invalid (YYYY-MM-DD)")
		}
		db = db.Where("feeding_event_scheduled_date = ?", dt)
	}
	if q.From != "" {
		dt, err := parseDateParam(q.From)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("feeding_event_scheduled_date >= ?", dt)
	}
	if q.To != "" {
		dt, err := parseDateParam(q.To)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("feeding_event_scheduled_date <= ?", dt)
	}
	if q.Fed != nil {
		db = db.Where("feeding_event_fed = ?", *q.Fed)
	}

	p := helper.ParsePage(c, "scheduled_date", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"scheduled_date": "feeding_event_scheduled_date",
		"created_at":     "feeding_event_created_at",
	}, "scheduled_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count feeding events")
	}

	var events []m.FeedingEventModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list feeding events")
	}

	resp := make([]d.FeedingEventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, d.NewFeedingEventResponse(&events[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *FeedingEventController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid event id")
	}

	var req d.PatchFeedingEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var ev m.FeedingEventModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("feeding_event_id = ? AND feeding_event_org_id = ?", id, orgID).
		First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "feeding event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch feeding event")
	}

	if err := req.ApplyPatch(&ev, time.Now()); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ev).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update feeding event")
	}
	return helper.Success(c, "Feeding event updated", d.NewFeedingEventResponse(&ev))
}
