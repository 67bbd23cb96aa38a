package model

import (
	"time"

	"github.com/google/uuid"
)

// Students come from bulk import and are effectively immutable afterwards.
// student_index_number carries a parseable numeric suffix ("CS/22/001" -> 1)
// which decides seating-range membership.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentNumber      string `gorm:"type:varchar(40);not null;uniqueIndex:uq_student_number;column:student_number" json:"student_number"`
	StudentIndexNumber string `gorm:"type:varchar(40);not null;uniqueIndex:uq_student_index_number;column:student_index_number" json:"student_index_number"`
	StudentFullName    string `gorm:"type:varchar(160);not null;column:student_full_name" json:"student_full_name"`

	StudentProgramID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_program;column:student_program_id" json:"student_program_id"`
	StudentClass     *string   `gorm:"type:varchar(60);column:student_class" json:"student_class,omitempty"`

	StudentFingerprintID *string `gorm:"type:varchar(80);column:student_fingerprint_id" json:"student_fingerprint_id,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
}

func (StudentModel) TableName() string {
	return "student"
}
