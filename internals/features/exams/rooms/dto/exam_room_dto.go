// internals/features/exams/rooms/dto/exam_room_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/exams/rooms/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateExamRoomRequest struct {
	ExamRoomName     string `json:"exam_room_name"     validate:"required,max=80"`
	ExamRoomCapacity int    `json:"exam_room_capacity" validate:"required,min=1"`

	ExamRoomCollegeID *string `json:"exam_room_college_id" validate:"omitempty,uuid"`
}

func (r CreateExamRoomRequest) ToModel() model.ExamRoomModel {
	m := model.ExamRoomModel{
		ExamRoomName:     strings.TrimSpace(r.ExamRoomName),
		ExamRoomCapacity: r.ExamRoomCapacity,
	}
	if r.ExamRoomCollegeID != nil {
		if id, err := uuid.Parse(*r.ExamRoomCollegeID); err == nil {
			m.ExamRoomCollegeID = &id
		}
	}
	return m
}

type UpdateExamRoomRequest struct {
	ExamRoomName     *string `json:"exam_room_name"     validate:"omitempty,max=80"`
	ExamRoomCapacity *int    `json:"exam_room_capacity" validate:"omitempty,min=1"`

	ExamRoomCollegeID *string `json:"exam_room_college_id" validate:"omitempty,uuid"`
}

func (r UpdateExamRoomRequest) Apply(m *model.ExamRoomModel) {
	if r.ExamRoomName != nil {
		m.ExamRoomName = strings.TrimSpace(*r.ExamRoomName)
	}
	if r.ExamRoomCapacity != nil {
		m.ExamRoomCapacity = *r.ExamRoomCapacity
	}
	if r.ExamRoomCollegeID != nil {
		if id, err := uuid.Parse(*r.ExamRoomCollegeID); err == nil {
			m.ExamRoomCollegeID = &id
		}
	}
}
