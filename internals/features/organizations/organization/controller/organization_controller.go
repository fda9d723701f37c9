package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	m "clutchly_backend/internals/features/organizations/organization/model"
	helper "clutchly_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

// Profile returns the organization the token belongs to.
func (ctl *OrganizationController) Profile(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var org m.OrganizationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("organization_id = ?", orgID).
		First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "organization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch organization")
	}
	return helper.Success(c, "OK", org)
}
