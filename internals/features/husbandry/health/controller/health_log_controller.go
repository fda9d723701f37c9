package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/husbandry/health/dto"
	m "clutchly_backend/internals/features/husbandry/health/model"
	helper "clutchly_backend/internals/helpers"
)

type HealthLogController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHealthLogController(db *gorm.DB) *HealthLogController {
	return &HealthLogController{DB: db, Validate: validator.New()}
}

type listHealthLogsQuery struct {
	ReptileID string `query:"reptile_id"`
	Category  string `query:"category"`
	From      string `query:"from"`
	To        string `query:"to"`
}

func (ctl *HealthLogController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q listHealthLogsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.HealthLogModel{}).
		Where("health_log_org_id = ?", orgID)

	if q.ReptileID != "" {
		if _, err := uuid.Parse(q.ReptileID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "reptile_id invalid")
		}
		db = db.Where("health_log_reptile_id = ?", q.ReptileID)
	}
	if q.Category != "" {
		db = db.Where("health_log_category = ?", q.Category)
	}
	if q.From != "" {
		t, err := time.ParseInLocation("2006-01-02", q.From, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("health_log_date >= ?", t)
	}
	if q.To != "" {
		t, err := time.ParseInLocation("2006-01-02", q.To, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("health_log_date <= ?", t)
	}

	p := helper.ParsePage(c, "log_date", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"log_date":   "health_log_date",
		"created_at": "health_log_created_at",
	}, "log_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count health logs")
	}

	var logs []m.HealthLogModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list health logs")
	}

	resp := make([]d.HealthLogResponse, 0, len(logs))
	for i := range logs {
		resp = append(resp, d.NewHealthLogResponse(&logs[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *HealthLogController) logOr404(c *fiber.Ctx, orgID uuid.UUID) (*m.HealthLogModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid health log id")
	}
	var hl m.HealthLogModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("health_log_id = ? AND health_log_org_id = ?", id, orgID).
		First(&hl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "health log not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "failed to fetch health log")
	}
	return &hl, nil
}

func (ctl *HealthLogController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	hl, err := ctl.logOr404(c, orgID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewHealthLogResponse(hl))
}

func (ctl *HealthLogController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateHealthLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	hl := m.HealthLogModel{HealthLogOrgID: orgID}
	if err := req.ApplyToModel(&hl); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&hl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create health log")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Health log created", d.NewHealthLogResponse(&hl))
}

func (ctl *HealthLogController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	hl, err := ctl.logOr404(c, orgID)
	if err != nil {
		return err
	}

	var req d.PatchHealthLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(hl); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(hl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update health log")
	}
	return helper.Success(c, "Health log updated", d.NewHealthLogResponse(hl))
}

func (ctl *HealthLogController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	hl, err := ctl.logOr404(c, orgID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(hl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete health log")
	}
	return helper.Success(c, "Health log deleted", nil)
}
