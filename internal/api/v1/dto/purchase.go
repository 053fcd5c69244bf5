package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PurchaseCreateDTO is the body of POST /api/purchase. Ids must be uuids in any
// case and amount a decimal, given as a JSON number or numeric string.
type PurchaseCreateDTO struct {
	CourseID string      `json:"courseId" validate:"required,anyuuid"`
	UserID   string      `json:"userId" validate:"required,anyuuid"`
	Amount   json.Number `json:"amount" validate:"required"`
}

// Canonicalize rewrites validated ids in their lowercase hyphenated form.
func (d *PurchaseCreateDTO) Canonicalize() {
	if id, err := uuid.Parse(d.CourseID); err == nil {
		d.CourseID = id.String()
	}
	if id, err := uuid.Parse(d.UserID); err == nil {
		d.UserID = id.String()
	}
}
