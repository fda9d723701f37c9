package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/husbandry/housing/dto"
	m "clutchly_backend/internals/features/husbandry/housing/model"
	helper "clutchly_backend/internals/helpers"
)

type LocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db, Validate: validator.New()}
}

/* =========================
   Query: List
   ========================= */

func (ctl *LocationController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.LocationModel{}).
		Where("location_org_id = ?", orgID)

	if roomID := c.Query("room_id"); roomID != "" {
		if _, err := uuid.Parse(roomID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "room_id invalid")
		}
		db = db.Where("location_room_id = ?", roomID)
	}
	if rackID := c.Query("rack_id"); rackID != "" {
		if _, err := uuid.Parse(rackID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "rack_id invalid")
		}
		db = db.Where("location_rack_id = ?", rackID)
	}
	if lvl := c.Query("shelf_level"); lvl != "" {
		n, err := strconv.Atoi(lvl)
		if err != nil || n < 1 {
			return helper.Error(c, fiber.StatusBadRequest, "shelf_level invalid")
		}
		db = db.Where("location_shelf_level = ?", n)
	}
	if c.QueryBool("unoccupied") {
		db = db.Where(`location_id NOT IN (
			SELECT reptile_location_id FROM reptiles
			WHERE reptile_location_id IS NOT NULL AND reptile_deleted_at IS NULL
		)`)
	}

	p := helper.ParsePage(c, "label", "asc")
	order, err := p.SafeOrderClause(map[string]string{
		"label":       "location_label",
		"created_at":  "location_created_at",
		"shelf_level": "location_shelf_level",
	}, "label")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count locations")
	}

	var locations []m.LocationModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&locations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list locations")
	}

	resp := make([]d.LocationResponse, 0, len(locations))
	for i := range locations {
		resp = append(resp, d.NewLocationResponse(&locations[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *LocationController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid location id")
	}

	var loc m.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("location_id = ? AND location_org_id = ?", id, orgID).
		First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch location")
	}
	return helper.Success(c, "OK", d.NewLocationResponse(&loc))
}

func (ctl *LocationController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := m.LocationModel{LocationOrgID: orgID}
	if err := req.ApplyToModel(&loc); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&loc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create location")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Location created", d.NewLocationResponse(&loc))
}

func (ctl *LocationController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid location id")
	}

	var req d.PatchLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var loc m.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("location_id = ? AND location_org_id = ?", id, orgID).
		First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch location")
	}

	if err := req.ApplyPatch(&loc); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&loc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update location")
	}
	return helper.Success(c, "Location updated", d.NewLocationResponse(&loc))
}

func (ctl *LocationController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid location id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("location_id = ? AND location_org_id = ?", id, orgID).
		Delete(&m.LocationModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete location")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "location not found")
	}
	return helper.Success(c, "Location deleted", nil)
}
