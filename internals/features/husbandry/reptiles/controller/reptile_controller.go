package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feedingsvc "clutchly_backend/internals/features/husbandry/feeding/service"
	d "clutchly_backend/internals/features/husbandry/reptiles/dto"
	m "clutchly_backend/internals/features/husbandry/reptiles/model"
	helper "clutchly_backend/internals/helpers"
)

type ReptileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Feeding  *feedingsvc.Service
}

func NewReptileController(db *gorm.DB) *ReptileController {
	return &ReptileController{
		DB:       db,
		Validate: validator.New(),
		Feeding:  feedingsvc.New(feedingsvc.NewGormStore(db)),
	}
}

func (ctl *ReptileController) reptileOr404(c *fiber.Ctx, orgID uuid.UUID) (*m.ReptileModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid reptile id")
	}
	var rep m.ReptileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("reptile_id = ? AND reptile_org_id = ?", id, orgID).
		First(&rep).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "reptile not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "failed to fetch reptile")
	}
	return &rep, nil
}

// notifyLocationChange runs the reactive feeding materializer. A failure
// here never fails the reptile write; it is logged and the move stands.
func (ctl *ReptileController) notifyLocationChange(c *fiber.Ctx, orgID uuid.UUID, rep *m.ReptileModel) {
	if rep.ReptileLocationID == nil {
		return
	}
	created, err := ctl.Feeding.ReactToLocationChange(c.UserContext(), orgID, rep.ReptileID, *rep.ReptileLocationID, time.Now())
	if err != nil {
		log.Printf("[ERROR] reactive feeding for reptile %s: %v", rep.ReptileID, err)
		return
	}
	if created > 0 {
		log.Printf("[FEEDING] reptile %s moved: %d event(s) created", rep.ReptileID, created)
	}
}

/* =======================================================
   CRUD
   ======================================================= */

type listReptilesQuery struct {
	Species    string `query:"species"`
	Status     string `query:"status"`
	Sex        string `query:"sex"`
	LocationID string `query:"location_id"`
	Search     string `query:"q"`
}

func (ctl *ReptileController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q listReptilesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ReptileModel{}).
		Where("reptile_org_id = ?", orgID)

	if q.Species != "" {
		db = db.Where("reptile_species = ?", q.Species)
	}
	if q.Status != "" {
		db = db.Where("reptile_status = ?", q.Status)
	}
	if q.Sex != "" {
		db = db.Where("reptile_sex = ?", q.Sex)
	}
	if q.LocationID != "" {
		if _, err := uuid.Parse(q.LocationID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "location_id invalid")
		}
		db = db.Where("reptile_location_id = ?", q.LocationID)
	}
	if q.Search != "" {
		db = db.Where("reptile_name ILIKE ?", "%"+q.Search+"%")
	}

	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "reptile_created_at",
		"name":       "reptile_name",
		"species":    "reptile_species",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count reptiles")
	}

	var reptiles []m.ReptileModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&reptiles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list reptiles")
	}

	resp := make([]d.ReptileResponse, 0, len(reptiles))
	for i := range reptiles {
		resp = append(resp, d.NewReptileResponse(&reptiles[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *ReptileController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rep, err := ctl.reptileOr404(c, orgID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewReptileResponse(rep))
}

func (ctl *ReptileController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateReptileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	rep := m.ReptileModel{ReptileOrgID: orgID}
	if err := req.ApplyToModel(&rep); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&rep).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create reptile")
	}

	// A reptile created straight into a location joins its schedules now.
	ctl.notifyLocationChange(c, orgID, &rep)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Reptile created", d.NewReptileResponse(&rep))
}

func (ctl *ReptileController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rep, err := ctl.reptileOr404(c, orgID)
	if err != nil {
		return err
	}

	var req d.PatchReptileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	moved, err := req.ApplyPatch(rep)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(rep).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update reptile")
	}

	if moved {
		ctl.notifyLocationChange(c, orgID, rep)
	}
	return helper.Success(c, "Reptile updated", d.NewReptileResponse(rep))
}

func (ctl *ReptileController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rep, err := ctl.reptileOr404(c, orgID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(rep).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete reptile")
	}
	return helper.Success(c, "Reptile deleted", nil)
}

/* =======================================================
   Photo upload
   ======================================================= */

func (ctl *ReptileController) UploadPhoto(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rep, err := ctl.reptileOr404(c, orgID)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "photo file is required")
	}

	url, err := helper.UploadImageToSupabase("reptiles", fileHeader)
	if err != nil {
		log.Printf("[ERROR] photo upload for reptile %s: %v", rep.ReptileID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "failed to upload photo")
	}

	rep.ReptilePhotoURL = &url
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(rep).
		Update("reptile_photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to save photo url")
	}
	return helper.Success(c, "Photo uploaded", d.NewReptileResponse(rep))
}
