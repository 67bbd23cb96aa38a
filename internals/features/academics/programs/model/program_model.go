package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgramModel struct {
	ProgramID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`
	ProgramName string    `gorm:"type:varchar(160);not null;column:program_name" json:"program_name"`
	ProgramCode string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_program_code;column:program_code" json:"program_code"`

	ProgramCreatedAt time.Time `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
}

func (ProgramModel) TableName() string {
	return "program"
}
