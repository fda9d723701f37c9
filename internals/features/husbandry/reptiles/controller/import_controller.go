package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svc "clutchly_backend/internals/features/husbandry/reptiles/service"
	helper "clutchly_backend/internals/helpers"
)

type ReptileImportController struct {
	Service *svc.ImportService
}

func NewReptileImportController(db *gorm.DB) *ReptileImportController {
	return &ReptileImportController{Service: svc.NewImportService(db)}
}

// ImportCSV accepts a multipart "file" field and imports reptiles in bulk.
// Per-row failures are reported in the response, not as an HTTP error.
func (ctl *ReptileImportController) ImportCSV(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "csv file is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	result, err := ctl.Service.ImportCSV(c.UserContext(), orgID, f)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Import finished", result)
}
