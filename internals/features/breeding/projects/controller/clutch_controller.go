package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/breeding/projects/dto"
	m "clutchly_backend/internals/features/breeding/projects/model"
	helper "clutchly_backend/internals/helpers"
)

type ClutchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClutchController(db *gorm.DB) *ClutchController {
	return &ClutchController{DB: db, Validate: validator.New()}
}

func (ctl *ClutchController) projectOr404(c *fiber.Ctx, orgID uuid.UUID) (*m.BreedingProjectModel, error) {
	id, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid breeding project id")
	}
	var p m.BreedingProjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("breeding_project_id = ? AND breeding_project_org_id = ?", id, orgID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "breeding project not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "failed to fetch breeding project")
	}
	return &p, nil
}

func (ctl *ClutchController) clutchOr404(c *fiber.Ctx, orgID, projectID uuid.UUID) (*m.ClutchModel, error) {
	id, err := uuid.Parse(c.Params("clutch_id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid clutch id")
	}
	var cl m.ClutchModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("clutch_id = ? AND clutch_org_id = ? AND clutch_project_id = ?", id, orgID, projectID).
		First(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "clutch not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "failed to fetch clutch")
	}
	return &cl, nil
}

func (ctl *ClutchController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID)
	if err != nil {
		return err
	}

	var clutches []m.ClutchModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("clutch_project_id = ? AND clutch_org_id = ?", p.BreedingProjectID, orgID).
		Order("clutch_laid_date DESC").
		Find(&clutches).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list clutches")
	}

	resp := make([]d.ClutchResponse, 0, len(clutches))
	for i := range clutches {
		resp = append(resp, d.NewClutchResponse(&clutches[i]))
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *ClutchController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID)
	if err != nil {
		return err
	}

	var req d.CreateClutchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	cl := m.ClutchModel{
		ClutchOrgID:     orgID,
		ClutchProjectID: p.BreedingProjectID,
	}
	if err := req.ApplyToModel(&cl); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&cl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create clutch")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clutch created", d.NewClutchResponse(&cl))
}

func (ctl *ClutchController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID)
	if err != nil {
		return err
	}
	cl, err := ctl.clutchOr404(c, orgID, p.BreedingProjectID)
	if err != nil {
		return err
	}

	var req d.PatchClutchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(cl); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(cl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update clutch")
	}
	return helper.Success(c, "Clutch updated", d.NewClutchResponse(cl))
}

func (ctl *ClutchController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID)
	if err != nil {
		return err
	}
	cl, err := ctl.clutchOr404(c, orgID, p.BreedingProjectID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(cl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete clutch")
	}
	return helper.Success(c, "Clutch deleted", nil)
}
