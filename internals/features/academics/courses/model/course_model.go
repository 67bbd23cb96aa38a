package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	CourseID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseCode string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_course_code;column:course_code" json:"course_code"`
	CourseName string    `gorm:"type:varchar(160);not null;column:course_name" json:"course_name"`

	CourseProgramID uuid.UUID `gorm:"type:uuid;not null;index:idx_course_program;column:course_program_id" json:"course_program_id"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
}

func (CourseModel) TableName() string {
	return "course"
}
