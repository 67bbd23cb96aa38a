// internals/features/users/profiles/dto/profile_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"examtrack_backend/internals/constants"
	model "examtrack_backend/internals/features/users/profiles/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// UpsertProfileRequest registers the identity provider's subject locally.
// profile_id must match the JWT sub the person will present.
type UpsertProfileRequest struct {
	ProfileID       string `json:"profile_id"        validate:"required,uuid"`
	ProfileFullName string `json:"profile_full_name" validate:"required,max=160"`
	ProfileEmail    string `json:"profile_email"     validate:"required,email,max=160"`
	ProfileRole     string `json:"profile_role"      validate:"required,oneof=admin invigilator"`

	// optional PIN gate for manual attendance overrides
	OverridePin *string `json:"override_pin" validate:"omitempty,min=4,max=12,numeric"`
}

func (r UpsertProfileRequest) ToModel() (model.ProfileModel, error) {
	id, err := uuid.Parse(r.ProfileID)
	if err != nil {
		return model.ProfileModel{}, fmt.Errorf("profile_id is not a valid uuid")
	}
	role := strings.ToLower(strings.TrimSpace(r.ProfileRole))
	switch role {
	case constants.RoleAdmin, constants.RoleInvigilator:
	default:
		return model.ProfileModel{}, fmt.Errorf("role must be admin or invigilator")
	}
	return model.ProfileModel{
		ProfileID:       id,
		ProfileFullName: strings.TrimSpace(r.ProfileFullName),
		ProfileEmail:    strings.ToLower(strings.TrimSpace(r.ProfileEmail)),
		ProfileRole:     role,
	}, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ProfileResponse struct {
	ProfileID       uuid.UUID `json:"profile_id"`
	ProfileFullName string    `json:"profile_full_name"`
	ProfileEmail    string    `json:"profile_email"`
	ProfileRole     string    `json:"profile_role"`
	HasOverridePin  bool      `json:"has_override_pin"`

	ProfileCreatedAt time.Time `json:"profile_created_at"`
}

func NewProfileResponse(m *model.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ProfileID:        m.ProfileID,
		ProfileFullName:  m.ProfileFullName,
		ProfileEmail:     m.ProfileEmail,
		ProfileRole:      m.ProfileRole,
		HasOverridePin:   m.ProfileOverridePinHash != nil,
		ProfileCreatedAt: m.ProfileCreatedAt,
	}
}

func NewProfileResponses(ms []model.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewProfileResponse(&ms[i]))
	}
	return out
}
