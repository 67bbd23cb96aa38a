// internals/features/exams/sessions/dto/exam_session_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/exams/sessions/model"
	"examtrack_backend/internals/helpers/dbtime"
)

/* =========================================================
   Helpers
   ========================================================= */

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateExamSessionRequest struct {
	ExamSessionCourseID string `json:"exam_session_course_id" validate:"required,uuid"`

	ExamSessionExamDate  string `json:"exam_session_exam_date"  validate:"required,datetime=2006-01-02"`
	ExamSessionStartTime string `json:"exam_session_start_time" validate:"required"`
	ExamSessionEndTime   string `json:"exam_session_end_time"   validate:"required"`

	ExamSessionSemester     string `json:"exam_session_semester"      validate:"required,max=20"`
	ExamSessionAcademicYear string `json:"exam_session_academic_year" validate:"required,max=20"`
}

func (r CreateExamSessionRequest) ToModel() (model.ExamSessionModel, error) {
	date, ok := parseDateYYYYMMDD(r.ExamSessionExamDate)
	if !ok {
		return model.ExamSessionModel{}, fmt.Errorf("exam_date invalid format, expected YYYY-MM-DD")
	}
	start, err := dbtime.Parse(r.ExamSessionStartTime)
	if err != nil {
		return model.ExamSessionModel{}, fmt.Errorf("start_time invalid format, expected HH:mm")
	}
	end, err := dbtime.Parse(r.ExamSessionEndTime)
	if err != nil {
		return model.ExamSessionModel{}, fmt.Errorf("end_time invalid format, expected HH:mm")
	}
	if !start.Before(end) {
		return model.ExamSessionModel{}, fmt.Errorf("end_time must be after start_time")
	}
	courseID, err := uuid.Parse(r.ExamSessionCourseID)
	if err != nil {
		return model.ExamSessionModel{}, fmt.Errorf("course_id is not a valid uuid")
	}
	return model.ExamSessionModel{
		ExamSessionCourseID:     courseID,
		ExamSessionExamDate:     date,
		ExamSessionStartTime:    start,
		ExamSessionEndTime:      end,
		ExamSessionSemester:     strings.TrimSpace(r.ExamSessionSemester),
		ExamSessionAcademicYear: strings.TrimSpace(r.ExamSessionAcademicYear),
	}, nil
}

// Update (partial)
type UpdateExamSessionRequest struct {
	ExamSessionCourseID     *string `json:"exam_session_course_id"     validate:"omitempty,uuid"`
	ExamSessionExamDate     *string `json:"exam_session_exam_date"     validate:"omitempty,datetime=2006-01-02"`
	ExamSessionStartTime    *string `json:"exam_session_start_time"    validate:"omitempty"`
	ExamSessionEndTime      *string `json:"exam_session_end_time"      validate:"omitempty"`
	ExamSessionSemester     *string `json:"exam_session_semester"      validate:"omitempty,max=20"`
	ExamSessionAcademicYear *string `json:"exam_session_academic_year" validate:"omitempty,max=20"`
}

func (r UpdateExamSessionRequest) Apply(m *model.ExamSessionModel) error {
	if r.ExamSessionCourseID != nil {
		id, err := uuid.Parse(*r.ExamSessionCourseID)
		if err != nil {
			return fmt.Errorf("course_id is not a valid uuid")
		}
		m.ExamSessionCourseID = id
	}
	if r.ExamSessionExamDate != nil {
		d, ok := parseDateYYYYMMDD(*r.ExamSessionExamDate)
		if !ok {
			return fmt.Errorf("exam_date invalid format, expected YYYY-MM-DD")
		}
		m.ExamSessionExamDate = d
	}
	if r.ExamSessionStartTime != nil {
		t, err := dbtime.Parse(*r.ExamSessionStartTime)
		if err != nil {
			return fmt.Errorf("start_time invalid format, expected HH:mm")
		}
		m.ExamSessionStartTime = t
	}
	if r.ExamSessionEndTime != nil {
		t, err := dbtime.Parse(*r.ExamSessionEndTime)
		if err != nil {
			return fmt.Errorf("end_time invalid format, expected HH:mm")
		}
		m.ExamSessionEndTime = t
	}
	if !m.ExamSessionStartTime.Before(m.ExamSessionEndTime) {
		return fmt.Errorf("end_time must be after start_time")
	}
	if r.ExamSessionSemester != nil {
		m.ExamSessionSemester = strings.TrimSpace(*r.ExamSessionSemester)
	}
	if r.ExamSessionAcademicYear != nil {
		m.ExamSessionAcademicYear = strings.TrimSpace(*r.ExamSessionAcademicYear)
	}
	return nil
}

/* =========================================================
   2) RESPONSE
   ========================================================= */

type ExamSessionResponse struct {
	ExamSessionID           uuid.UUID  `json:"exam_session_id"`
	ExamSessionCourseID     uuid.UUID  `json:"exam_session_course_id"`
	ExamSessionExamDate     string     `json:"exam_session_exam_date"`
	ExamSessionStartTime    dbtime.Tod `json:"exam_session_start_time"`
	ExamSessionEndTime      dbtime.Tod `json:"exam_session_end_time"`
	ExamSessionSemester     string     `json:"exam_session_semester"`
	ExamSessionAcademicYear string     `json:"exam_session_academic_year"`
	ExamSessionCreatedAt    time.Time  `json:"exam_session_created_at"`
}

func NewExamSessionResponse(m *model.ExamSessionModel) ExamSessionResponse {
	return ExamSessionResponse{
		ExamSessionID:           m.ExamSessionID,
		ExamSessionCourseID:     m.ExamSessionCourseID,
		ExamSessionExamDate:     m.ExamSessionExamDate.Format("2006-01-02"),
		ExamSessionStartTime:    m.ExamSessionStartTime,
		ExamSessionEndTime:      m.ExamSessionEndTime,
		ExamSessionSemester:     m.ExamSessionSemester,
		ExamSessionAcademicYear: m.ExamSessionAcademicYear,
		ExamSessionCreatedAt:    m.ExamSessionCreatedAt,
	}
}

func NewExamSessionResponses(ms []model.ExamSessionModel) []ExamSessionResponse {
	out := make([]ExamSessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewExamSessionResponse(&ms[i]))
	}
	return out
}
