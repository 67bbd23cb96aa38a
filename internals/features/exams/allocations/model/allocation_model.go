package model

import (
	"time"

	"github.com/google/uuid"
)

// One contiguous block of index numbers, within one course, assigned to one
// room for one exam session. At most one allocation per (session, room).
type CourseRoomAllocationModel struct {
	CourseRoomAllocationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_room_allocation_id" json:"course_room_allocation_id"`

	CourseRoomAllocationExamSessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_cra_session;uniqueIndex:uq_cra_session_room,priority:1;column:course_room_allocation_exam_session_id" json:"course_room_allocation_exam_session_id"`
	CourseRoomAllocationExamRoomID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cra_session_room,priority:2;column:course_room_allocation_exam_room_id" json:"course_room_allocation_exam_room_id"`
	CourseRoomAllocationCourseID      uuid.UUID `gorm:"type:uuid;not null;index:idx_cra_course;column:course_room_allocation_course_id" json:"course_room_allocation_course_id"`

	CourseRoomAllocationIndexStart   int `gorm:"not null;column:course_room_allocation_index_start" json:"course_room_allocation_index_start"`
	CourseRoomAllocationIndexEnd     int `gorm:"not null;column:course_room_allocation_index_end" json:"course_room_allocation_index_end"`
	CourseRoomAllocationStudentCount int `gorm:"not null;column:course_room_allocation_student_count" json:"course_room_allocation_student_count"`

	CourseRoomAllocationCreatedAt time.Time  `gorm:"column:course_room_allocation_created_at;autoCreateTime" json:"course_room_allocation_created_at"`
	CourseRoomAllocationUpdatedAt *time.Time `gorm:"column:course_room_allocation_updated_at;autoUpdateTime" json:"course_room_allocation_updated_at,omitempty"`
}

func (CourseRoomAllocationModel) TableName() string {
	return "course_room_allocation"
}
