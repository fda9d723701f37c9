package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

type CreateFeederSizeRequest struct {
	FeederSizeName      string `json:"feeder_size_name" validate:"required,min=1,max=60"`
	FeederSizeSortOrder int    `json:"feeder_size_sort_order" validate:"gte=0,lte=1000"`
}

func (r *CreateFeederSizeRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateFeederSizeRequest) ApplyToModel(dst *m.FeederSizeModel) {
	dst.FeederSizeName = strings.TrimSpace(r.FeederSizeName)
	dst.FeederSizeSortOrder = r.FeederSizeSortOrder
}

type FeederSizeResponse struct {
	FeederSizeID        uuid.UUID `json:"feeder_size_id"`
	FeederSizeName      string    `json:"feeder_size_name"`
	FeederSizeSortOrder int       `json:"feeder_size_sort_order"`
}

func NewFeederSizeResponse(src *m.FeederSizeModel) FeederSizeResponse {
	return FeederSizeResponse{
		FeederSizeID:        src.FeederSizeID,
		FeederSizeName:      src.FeederSizeName,
		FeederSizeSortOrder: src.FeederSizeSortOrder,
	}
}
