package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the identity provider's subject. profile_id equals the
// JWT "sub"; issuance and sessions stay external.
type ProfileModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey;column:profile_id" json:"profile_id"`

	ProfileFullName string `gorm:"type:varchar(160);not null;column:profile_full_name" json:"profile_full_name"`
	ProfileEmail    string `gorm:"type:varchar(160);not null;uniqueIndex:uq_profile_email;column:profile_email" json:"profile_email"`
	ProfileRole     string `gorm:"type:varchar(20);not null;index:idx_profile_role;column:profile_role" json:"profile_role"`

	// bcrypt hash; set when the invigilator uses a PIN gate for manual overrides
	ProfileOverridePinHash *string `gorm:"type:varchar(80);column:profile_override_pin_hash" json:"-"`

	ProfileCreatedAt time.Time  `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt *time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at,omitempty"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
