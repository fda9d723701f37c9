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

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validate: validator.New()}
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rooms []m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_org_id = ?", orgID).
		Order("room_name ASC").
		Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list rooms")
	}

	resp := make([]d.RoomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, d.NewRoomResponse(&rooms[i]))
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid room id")
	}

	var room m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ? AND room_org_id = ?", id, orgID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "room not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch room")
	}
	return helper.Success(c, "OK", d.NewRoomResponse(&room))
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	room := m.RoomModel{RoomOrgID: orgID}
	req.ApplyToModel(&room)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create room")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", d.NewRoomResponse(&room))
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid room id")
	}

	var req d.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var room m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ? AND room_org_id = ?", id, orgID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "room not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch room")
	}

	req.ApplyToModel(&room)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update room")
	}
	return helper.Success(c, "Room updated", d.NewRoomResponse(&room))
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid room id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ? AND room_org_id = ?", id, orgID).
		Delete(&m.RoomModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete room")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "room not found")
	}
	return helper.Success(c, "Room deleted", nil)
}
