// internals/features/exams/allocations/dto/allocation_dto.go
package dto

import (
	"fmt"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/exams/allocations/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateAllocationRequest struct {
	CourseRoomAllocationExamSessionID string `json:"course_room_allocation_exam_session_id" validate:"required,uuid"`
	CourseRoomAllocationExamRoomID    string `json:"course_room_allocation_exam_room_id"    validate:"required,uuid"`

	CourseRoomAllocationIndexStart   int `json:"course_room_allocation_index_start"   validate:"min=0"`
	CourseRoomAllocationIndexEnd     int `json:"course_room_allocation_index_end"     validate:"min=0"`
	CourseRoomAllocationStudentCount int `json:"course_room_allocation_student_count" validate:"required,min=1"`
}

func (r CreateAllocationRequest) ToModel() (model.CourseRoomAllocationModel, error) {
	sessionID, err := uuid.Parse(r.CourseRoomAllocationExamSessionID)
	if err != nil {
		return model.CourseRoomAllocationModel{}, fmt.Errorf("exam_session_id is not a valid uuid")
	}
	roomID, err := uuid.Parse(r.CourseRoomAllocationExamRoomID)
	if err != nil {
		return model.CourseRoomAllocationModel{}, fmt.Errorf("exam_room_id is not a valid uuid")
	}
	if r.CourseRoomAllocationIndexEnd < r.CourseRoomAllocationIndexStart {
		return model.CourseRoomAllocationModel{}, fmt.Errorf("index_end must be >= index_start")
	}
	return model.CourseRoomAllocationModel{
		CourseRoomAllocationExamSessionID: sessionID,
		CourseRoomAllocationExamRoomID:    roomID,
		CourseRoomAllocationIndexStart:    r.CourseRoomAllocationIndexStart,
		CourseRoomAllocationIndexEnd:      r.CourseRoomAllocationIndexEnd,
		CourseRoomAllocationStudentCount:  r.CourseRoomAllocationStudentCount,
	}, nil
}

type UpdateAllocationRequest struct {
	CourseRoomAllocationExamRoomID *string `json:"course_room_allocation_exam_room_id" validate:"omitempty,uuid"`

	CourseRoomAllocationIndexStart   *int `json:"course_room_allocation_index_start"   validate:"omitempty,min=0"`
	CourseRoomAllocationIndexEnd     *int `json:"course_room_allocation_index_end"     validate:"omitempty,min=0"`
	CourseRoomAllocationStudentCount *int `json:"course_room_allocation_student_count" validate:"omitempty,min=1"`
}

func (r UpdateAllocationRequest) Apply(m *model.CourseRoomAllocationModel) error {
	if r.CourseRoomAllocationExamRoomID != nil {
		id, err := uuid.Parse(*r.CourseRoomAllocationExamRoomID)
		if err != nil {
			return fmt.Errorf("exam_room_id is not a valid uuid")
		}
		m.CourseRoomAllocationExamRoomID = id
	}
	if r.CourseRoomAllocationIndexStart != nil {
		m.CourseRoomAllocationIndexStart = *r.CourseRoomAllocationIndexStart
	}
	if r.CourseRoomAllocationIndexEnd != nil {
		m.CourseRoomAllocationIndexEnd = *r.CourseRoomAllocationIndexEnd
	}
	if m.CourseRoomAllocationIndexEnd < m.CourseRoomAllocationIndexStart {
		return fmt.Errorf("index_end must be >= index_start")
	}
	if r.CourseRoomAllocationStudentCount != nil {
		m.CourseRoomAllocationStudentCount = *r.CourseRoomAllocationStudentCount
	}
	return nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// AllocationWithRoomResponse joins the room row the invigilator app shows
// next to the range.
type AllocationWithRoomResponse struct {
	model.CourseRoomAllocationModel

	ExamRoomName     string `json:"exam_room_name"`
	ExamRoomCapacity int    `json:"exam_room_capacity"`
}
