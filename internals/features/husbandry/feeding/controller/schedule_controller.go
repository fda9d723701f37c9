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
	"clutchly_backend/internals/features/husbandry/feeding/service"
	helper "clutchly_backend/internals/helpers"
)

type FeedingScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func NewFeedingScheduleController(db *gorm.DB) *FeedingScheduleController {
	return &FeedingScheduleController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(service.NewGormStore(db)),
	}
}

func (ctl *FeedingScheduleController) scheduleOr404(c *fiber.Ctx, orgID uuid.UUID) (*m.FeedingScheduleModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid schedule id")
	}
	var sched m.FeedingScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("feeding_schedule_id = ? AND feeding_schedule_org_id = ?", id, orgID).
		First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "feeding schedule not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to fetch feeding schedule")
	}
	return &sched, nil
}

func (ctl *FeedingScheduleController) targetsOf(c *fiber.Ctx, orgID, scheduleID uuid.UUID) ([]m.FeedingTargetModel, error) {
	var targets []m.FeedingTargetModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("feeding_target_schedule_id = ? AND feeding_target_org_id = ?", scheduleID, orgID).
		Find(&targets).Error
	return targets, err
}

/* =========================
   CRUD
   ========================= */

func (ctl *FeedingScheduleController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Where("feeding_schedule_org_id = ?", orgID)
	if c.Query("active") != "" {
		db = db.Where("feeding_schedule_is_active = ?", c.QueryBool("active"))
	}

	var schedules []m.FeedingScheduleModel
	if err := db.Order("feeding_schedule_created_at DESC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list feeding schedules")
	}

	resp := make([]d.FeedingScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, d.NewFeedingScheduleResponse(&schedules[i], nil))
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *FeedingScheduleController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sched, err := ctl.scheduleOr404(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	targets, err := ctl.targetsOf(c, orgID, sched.FeedingScheduleID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch targets")
	}
	return helper.Success(c, "OK", d.NewFeedingScheduleResponse(sched, targets))
}

func (ctl *FeedingScheduleController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateFeedingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	sched := m.FeedingScheduleModel{FeedingScheduleOrgID: orgID, FeedingScheduleIsActive: true}
	if err := req.ApplyToModel(&sched); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var targets []m.FeedingTargetModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sched).Error; err != nil {
			return err
		}
		for i := range req.Targets {
			t := m.FeedingTargetModel{
				FeedingTargetOrgID:      orgID,
				FeedingTargetScheduleID: sched.FeedingScheduleID,
			}
			if err := req.Targets[i].ApplyToModel(&t); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			targets = append(targets, t)
		}
		if len(targets) > 0 {
			if err := tx.Create(&targets).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feeding schedule created",
		d.NewFeedingScheduleResponse(&sched, targets))
}

func (ctl *FeedingScheduleController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sched, err := ctl.scheduleOr404(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.PatchFeedingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(sched); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(sched).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update feeding schedule")
	}
	return helper.Success(c, "Feeding schedule updated", d.NewFeedingScheduleResponse(sched, nil))
}

func (ctl *FeedingScheduleController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("feeding_schedule_id = ? AND feeding_schedule_org_id = ?", id, orgID).
			Delete(&m.FeedingScheduleModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "feeding schedule not found")
		}
		// Targets go with the schedule; events stay (they are history).
		return tx.Where("feeding_target_schedule_id = ? AND feeding_target_org_id = ?", id, orgID).
			Delete(&m.FeedingTargetModel{}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Feeding schedule deleted", nil)
}

/* =========================
   Targets
   ========================= */

func (ctl *FeedingScheduleController) AddTarget(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sched, err := ctl.scheduleOr404(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateFeedingTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	target := m.FeedingTargetModel{
		FeedingTargetOrgID:      orgID,
		FeedingTargetScheduleID: sched.FeedingScheduleID,
	}
	if err := req.ApplyToModel(&target); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&target).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to add target")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Target added", d.NewFeedingTargetResponse(&target))
}

func (ctl *FeedingScheduleController) RemoveTarget(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("target_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid target id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("feeding_target_id = ? AND feeding_target_org_id = ?", targetID, orgID).
		Delete(&m.FeedingTargetModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to remove target")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "target not found")
	}
	return helper.Success(c, "Target removed", nil)
}

/* =========================
   Generate & status
   ========================= */

type generateQuery struct {
	EndDate string `query:"end_date"` // YYYY-MM-DD, optional
}

func (ctl *FeedingScheduleController) Generate(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var q generateQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var endOverride *time.Time
	if q.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.EndDate, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "end_date invalid (YYYY-MM-DD)")
		}
		endOverride = &t
	}

	result, err := ctl.Service.GenerateFromSchedule(c.UserContext(), orgID, id, endOverride)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoTargets), errors.Is(err, service.ErrNoReptiles):
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "event generation failed")
		}
	}
	return helper.Success(c, "Events generated", result)
}

func (ctl *FeedingScheduleController) Status(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	today := time.Now()
	if s := c.Query("date"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "date invalid (YYYY-MM-DD)")
		}
		today = t
	}

	status, err := ctl.Service.ScheduleStatus(c.UserContext(), orgID, id, today)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to compute schedule status")
	}
	return helper.Success(c, "OK", status)
}
