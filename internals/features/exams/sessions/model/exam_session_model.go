package model

import (
	"time"

	"github.com/google/uuid"

	"examtrack_backend/internals/helpers/dbtime"
)

type ExamSessionModel struct {
	ExamSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_session_id" json:"exam_session_id"`

	ExamSessionCourseID uuid.UUID `gorm:"type:uuid;not null;index:idx_exam_session_course;column:exam_session_course_id" json:"exam_session_course_id"`

	ExamSessionExamDate  time.Time  `gorm:"type:date;not null;index:idx_exam_session_date;column:exam_session_exam_date" json:"exam_session_exam_date"`
	ExamSessionStartTime dbtime.Tod `gorm:"type:time;not null;column:exam_session_start_time" json:"exam_session_start_time"`
	ExamSessionEndTime   dbtime.Tod `gorm:"type:time;not null;column:exam_session_end_time" json:"exam_session_end_time"`

	ExamSessionSemester     string `gorm:"type:varchar(20);not null;column:exam_session_semester" json:"exam_session_semester"`
	ExamSessionAcademicYear string `gorm:"type:varchar(20);not null;column:exam_session_academic_year" json:"exam_session_academic_year"`

	ExamSessionCreatedAt time.Time  `gorm:"column:exam_session_created_at;autoCreateTime" json:"exam_session_created_at"`
	ExamSessionUpdatedAt *time.Time `gorm:"column:exam_session_updated_at;autoUpdateTime" json:"exam_session_updated_at,omitempty"`
}

func (ExamSessionModel) TableName() string {
	return "exam_session"
}
