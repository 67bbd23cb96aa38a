// internals/features/exams/invigilation/dto/assignment_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/exams/invigilation/model"
	"examtrack_backend/internals/helpers/dbtime"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type AssignInvigilatorRequest struct {
	InvigilationAssignmentProfileID     string `json:"invigilation_assignment_profile_id"      validate:"required,uuid"`
	InvigilationAssignmentExamSessionID string `json:"invigilation_assignment_exam_session_id" validate:"required,uuid"`
	InvigilationAssignmentExamRoomID    string `json:"invigilation_assignment_exam_room_id"    validate:"required,uuid"`
}

func (r AssignInvigilatorRequest) ToModel(assignedBy uuid.UUID) (model.InvigilationAssignmentModel, error) {
	profileID, err := uuid.Parse(r.InvigilationAssignmentProfileID)
	if err != nil {
		return model.InvigilationAssignmentModel{}, fmt.Errorf("profile_id is not a valid uuid")
	}
	sessionID, err := uuid.Parse(r.InvigilationAssignmentExamSessionID)
	if err != nil {
		return model.InvigilationAssignmentModel{}, fmt.Errorf("exam_session_id is not a valid uuid")
	}
	roomID, err := uuid.Parse(r.InvigilationAssignmentExamRoomID)
	if err != nil {
		return model.InvigilationAssignmentModel{}, fmt.Errorf("exam_room_id is not a valid uuid")
	}
	return model.InvigilationAssignmentModel{
		InvigilationAssignmentProfileID:     profileID,
		InvigilationAssignmentExamSessionID: sessionID,
		InvigilationAssignmentExamRoomID:    roomID,
		InvigilationAssignmentAssignedBy:    assignedBy,
	}, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// MyAssignmentResponse is one row of the invigilator's duty roster,
// joined with the session schedule and the room.
type MyAssignmentResponse struct {
	InvigilationAssignmentID uuid.UUID `json:"invigilation_assignment_id"`

	ExamSessionID           uuid.UUID  `json:"exam_session_id"`
	ExamSessionExamDate     time.Time  `json:"exam_session_exam_date"`
	ExamSessionStartTime    dbtime.Tod `json:"exam_session_start_time"`
	ExamSessionEndTime      dbtime.Tod `json:"exam_session_end_time"`
	ExamSessionSemester     string     `json:"exam_session_semester"`
	ExamSessionAcademicYear string     `json:"exam_session_academic_year"`

	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`

	ExamRoomID       uuid.UUID `json:"exam_room_id"`
	ExamRoomName     string    `json:"exam_room_name"`
	ExamRoomCapacity int       `json:"exam_room_capacity"`
}
