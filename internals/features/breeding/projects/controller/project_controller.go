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

type BreedingProjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBreedingProjectController(db *gorm.DB) *BreedingProjectController {
	return &BreedingProjectController{DB: db, Validate: validator.New()}
}

func (ctl *BreedingProjectController) projectOr404(c *fiber.Ctx, orgID uuid.UUID, param string) (*m.BreedingProjectModel, error) {
	id, err := uuid.Parse(c.Params(param))
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

/* =======================================================
   Projects
   ======================================================= */

func (ctl *BreedingProjectController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.BreedingProjectModel{}).
		Where("breeding_project_org_id = ?", orgID)

	if season := c.Query("season"); season != "" {
		db = db.Where("breeding_project_season = ?", season)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("breeding_project_status = ?", status)
	}

	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "breeding_project_created_at",
		"season":     "breeding_project_season",
		"name":       "breeding_project_name",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count breeding projects")
	}

	var projects []m.BreedingProjectModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&projects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list breeding projects")
	}

	resp := make([]d.BreedingProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, d.NewBreedingProjectResponse(&projects[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *BreedingProjectController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID, "id")
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewBreedingProjectResponse(p))
}

func (ctl *BreedingProjectController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateBreedingProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	p := m.BreedingProjectModel{BreedingProjectOrgID: orgID}
	if err := req.ApplyToModel(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create breeding project")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Breeding project created", d.NewBreedingProjectResponse(&p))
}

func (ctl *BreedingProjectController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID, "id")
	if err != nil {
		return err
	}

	var req d.PatchBreedingProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(p)

	if err := ctl.DB.WithContext(c.UserContext()).Save(p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update breeding project")
	}
	return helper.Success(c, "Breeding project updated", d.NewBreedingProjectResponse(p))
}

func (ctl *BreedingProjectController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID, "id")
	if err != nil {
		return err
	}

	// Clutches go with their project.
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("clutch_project_id = ? AND clutch_org_id = ?", p.BreedingProjectID, orgID).
			Delete(&m.ClutchModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete breeding project")
	}
	return helper.Success(c, "Breeding project deleted", nil)
}

// AddPairing appends one pairing attempt to the project's log.
func (ctl *BreedingProjectController) AddPairing(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p, err := ctl.projectOr404(c, orgID, "id")
	if err != nil {
		return err
	}

	var req d.AddPairingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.AppendTo(p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to record pairing")
	}
	return helper.Success(c, "Pairing recorded", d.NewBreedingProjectResponse(p))
}
