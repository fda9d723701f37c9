package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/husbandry/housing/dto"
	m "clutchly_backend/internals/features/husbandry/housing/model"
	helper "clutchly_backend/internals/helpers"
)

type RackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRackController(db *gorm.DB) *RackController {
	return &RackController{DB: db, Validate: validator.New()}
}

func (ctl *RackController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Where("rack_org_id = ?", orgID)

	if roomID := c.Query("room_id"); roomID != "" {
		if _, err := uuid.Parse(roomID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "room_id invalid")
		}
		db = db.Where("rack_room_id = ?", roomID)
	}

	var racks []m.RackModel
	if err := db.Order("rack_name ASC").Find(&racks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list racks")
	}

	resp := make([]d.RackResponse, 0, len(racks))
	for i := range racks {
		resp = append(resp, d.NewRackResponse(&racks[i]))
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *RackController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid rack id")
	}

	var rack m.RackModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("rack_id = ? AND rack_org_id = ?", id, orgID).
		First(&rack).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "rack not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch rack")
	}
	return helper.Success(c, "OK", d.NewRackResponse(&rack))
}

func (ctl *RackController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateRackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	rack := m.RackModel{RackOrgID: orgID}
	if err := req.ApplyToModel(&rack); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&rack).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create rack")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rack created", d.NewRackResponse(&rack))
}

func (ctl *RackController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid rack id")
	}

	var req d.UpdateRackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var rack m.RackModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("rack_id = ? AND rack_org_id = ?", id, orgID).
		First(&rack).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "rack not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch rack")
	}

	if err := req.ApplyToModel(&rack); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&rack).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update rack")
	}
	return helper.Success(c, "Rack updated", d.NewRackResponse(&rack))
}

func (ctl *RackController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid rack id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("rack_id = ? AND rack_org_id = ?", id, orgID).
		Delete(&m.RackModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete rack")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "rack not found")
	}
	return helper.Success(c, "Rack deleted", nil)
}
