package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessModel "examtrack_backend/internals/features/exams/sessions/model"
	"examtrack_backend/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	require.NoError(t, err)
	return v
}

func session(t *testing.T, date string, start, end string) sessModel.ExamSessionModel {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return sessModel.ExamSessionModel{
		ExamSessionExamDate:  d,
		ExamSessionStartTime: tod(t, start),
		ExamSessionEndTime:   tod(t, end),
	}
}

func TestWindowsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"overlapping", "09:00", "12:00", "11:00", "13:00", true},
		{"shared boundary allowed", "09:00", "12:00", "12:00", "14:00", false},
		{"disjoint", "08:00", "10:00", "13:00", "15:00", false},
		{"contained", "09:00", "17:00", "10:00", "11:00", true},
		{"identical", "09:00", "12:00", "09:00", "12:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, a2 := tod(t, tt.aStart).Minutes(), tod(t, tt.aEnd).Minutes()
			b1, b2 := tod(t, tt.bStart).Minutes(), tod(t, tt.bEnd).Minutes()
			assert.Equal(t, tt.want, WindowsOverlap(a1, a2, b1, b2))
			assert.Equal(t, tt.want, WindowsOverlap(b1, b2, a1, a2), "must be symmetric")
		})
	}
}

func TestFindScheduleConflict(t *testing.T) {
	held := []sessModel.ExamSessionModel{
		session(t, "2025-06-10", "09:00", "12:00"),
	}

	// 11:00-13:00 same date overlaps
	hit := FindScheduleConflict(held, session(t, "2025-06-10", "11:00", "13:00"))
	assert.NotNil(t, hit)

	// 12:00-14:00 same date shares only the boundary: no conflict
	assert.Nil(t, FindScheduleConflict(held, session(t, "2025-06-10", "12:00", "14:00")))

	// same window on another date: no conflict
	assert.Nil(t, FindScheduleConflict(held, session(t, "2025-06-11", "09:00", "12:00")))
}
