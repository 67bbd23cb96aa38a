package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	attModel "examtrack_backend/internals/features/exams/attendance/model"
)

func mkAlloc(id uuid.UUID, count int) allocModel.CourseRoomAllocationModel {
	return allocModel.CourseRoomAllocationModel{
		CourseRoomAllocationID:           id,
		CourseRoomAllocationExamRoomID:   uuid.New(),
		CourseRoomAllocationStudentCount: count,
	}
}

func mkRecord(allocID uuid.UUID, method attModel.AttendanceMethod) attModel.AttendanceLogModel {
	return attModel.AttendanceLogModel{
		AttendanceLogID:           uuid.New(),
		AttendanceLogAllocationID: allocID,
		AttendanceLogMethod:       method,
	}
}

func TestComputeSessionStats(t *testing.T) {
	a1 := uuid.New()
	a2 := uuid.New()
	allocs := []allocModel.CourseRoomAllocationModel{
		mkAlloc(a1, 100),
		mkAlloc(a2, 50),
	}

	records := []attModel.AttendanceLogModel{
		mkRecord(a1, attModel.MethodBiometric),
		mkRecord(a1, attModel.MethodBiometric),
		mkRecord(a1, attModel.MethodManual),
		mkRecord(a2, attModel.MethodBiometric),
		// stray record of an allocation outside this session is ignored
		mkRecord(uuid.New(), attModel.MethodBiometric),
	}

	stats := ComputeSessionStats(allocs, records)

	assert.Equal(t, 150, stats.Expected)
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 1, stats.Overrides)
	assert.Equal(t, 146, stats.Absent)
	assert.InDelta(t, 4.0/150.0, stats.Rate, 1e-9)

	// present + overrides + absent == expected, per allocation and in total
	for _, as := range stats.Allocations {
		assert.Equal(t, as.Expected, as.Present+as.Overrides+as.Absent)
	}
	assert.Equal(t, stats.Expected, stats.Present+stats.Overrides+stats.Absent)
}

func TestComputeSessionStatsEmpty(t *testing.T) {
	stats := ComputeSessionStats(nil, nil)
	assert.Equal(t, 0, stats.Expected)
	assert.Zero(t, stats.Rate)
	assert.Empty(t, stats.Allocations)
}

func TestRateZeroExpected(t *testing.T) {
	assert.Zero(t, Rate(3, 1, 0), "never divide by zero")
}
