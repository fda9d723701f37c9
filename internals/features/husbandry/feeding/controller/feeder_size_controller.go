package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/husbandry/feeding/dto"
	m "clutchly_backend/internals/features/husbandry/feeding/model"
	helper "clutchly_backend/internals/helpers"
)

type FeederSizeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeederSizeController(db *gorm.DB) *FeederSizeController {
	return &FeederSizeController{DB: db, Validate: validator.New()}
}

func (ctl *FeederSizeController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var sizes []m.FeederSizeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("feeder_size_org_id = ?", orgID).
		Order("feeder_size_sort_order ASC, feeder_size_name ASC").
		Find(&sizes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list feeder sizes")
	}

	resp := make([]d.FeederSizeResponse, 0, len(sizes))
	for i := range sizes {
		resp = append(resp, d.NewFeederSizeResponse(&sizes[i]))
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *FeederSizeController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateFeederSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	size := m.FeederSizeModel{FeederSizeOrgID: orgID}
	req.ApplyToModel(&size)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&size).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create feeder size")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feeder size created", d.NewFeederSizeResponse(&size))
}

func (ctl *FeederSizeController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid feeder size id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("feeder_size_id = ? AND feeder_size_org_id = ?", id, orgID).
		Delete(&m.FeederSizeModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete feeder size")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "feeder size not found")
	}
	return helper.Success(c, "Feeder size deleted", nil)
}
