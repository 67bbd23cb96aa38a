package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateExamSessionRequest {
	return CreateExamSessionRequest{
		ExamSessionCourseID:     uuid.NewString(),
		ExamSessionExamDate:     "2025-06-10",
		ExamSessionStartTime:    "09:00",
		ExamSessionEndTime:      "12:00",
		ExamSessionSemester:     "Second",
		ExamSessionAcademicYear: "2024/2025",
	}
}

func TestCreateToModel(t *testing.T) {
	m, err := validCreate().ToModel()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", m.ExamSessionExamDate.Format("2006-01-02"))
	assert.Equal(t, 9*60, m.ExamSessionStartTime.Minutes())
	assert.Equal(t, 12*60, m.ExamSessionEndTime.Minutes())
}

func TestCreateToModelRejectsInvertedWindow(t *testing.T) {
	req := validCreate()
	req.ExamSessionStartTime = "12:00"
	req.ExamSessionEndTime = "09:00"
	_, err := req.ToModel()
	assert.Error(t, err)

	// zero-length window is also invalid
	req.ExamSessionEndTime = "12:00"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestUpdateApplyKeepsWindowValid(t *testing.T) {
	m, err := validCreate().ToModel()
	require.NoError(t, err)

	// moving only the end before the kept start must fail
	bad := "08:00"
	err = UpdateExamSessionRequest{ExamSessionEndTime: &bad}.Apply(&m)
	assert.Error(t, err)

	later := "13:30"
	require.NoError(t, UpdateExamSessionRequest{ExamSessionEndTime: &later}.Apply(&m))
	assert.Equal(t, 13*60+30, m.ExamSessionEndTime.Minutes())
}
