package model

import (
	"time"

	"github.com/google/uuid"
)

type ExamRoomModel struct {
	ExamRoomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_room_id" json:"exam_room_id"`

	ExamRoomName     string `gorm:"type:varchar(80);not null;uniqueIndex:uq_exam_room_name;column:exam_room_name" json:"exam_room_name"`
	ExamRoomCapacity int    `gorm:"not null;column:exam_room_capacity" json:"exam_room_capacity"`

	ExamRoomCollegeID *uuid.UUID `gorm:"type:uuid;column:exam_room_college_id" json:"exam_room_college_id,omitempty"`

	ExamRoomCreatedAt time.Time  `gorm:"column:exam_room_created_at;autoCreateTime" json:"exam_room_created_at"`
	ExamRoomUpdatedAt *time.Time `gorm:"column:exam_room_updated_at;autoUpdateTime" json:"exam_room_updated_at,omitempty"`
}

func (ExamRoomModel) TableName() string {
	return "exam_room"
}
