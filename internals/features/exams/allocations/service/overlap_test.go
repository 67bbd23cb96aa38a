package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "examtrack_backend/internals/features/exams/allocations/model"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 1, 50, 51, 100, false},
		{"disjoint after", 51, 100, 1, 50, false},
		{"identical", 100, 199, 100, 199, true},
		{"contained", 100, 199, 120, 150, true},
		{"partial left", 100, 199, 50, 100, true},
		{"partial right", 100, 199, 199, 250, true},
		{"touching endpoints overlap (inclusive)", 1, 100, 100, 200, true},
		{"single index both", 5, 5, 5, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func alloc(id uuid.UUID, start, end int) model.CourseRoomAllocationModel {
	return model.CourseRoomAllocationModel{
		CourseRoomAllocationID:         id,
		CourseRoomAllocationIndexStart: start,
		CourseRoomAllocationIndexEnd:   end,
	}
}

func TestFindRangeConflict(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	siblings := []model.CourseRoomAllocationModel{
		alloc(a, 1, 100),
		alloc(b, 101, 200),
	}

	// overlapping with the first sibling
	hit := FindRangeConflict(siblings, 50, 120, uuid.Nil)
	if assert.NotNil(t, hit) {
		assert.Equal(t, a, hit.CourseRoomAllocationID)
	}

	// non-overlapping range is free
	assert.Nil(t, FindRangeConflict(siblings, 201, 300, uuid.Nil))

	// updating a record must not conflict with itself
	assert.Nil(t, FindRangeConflict(siblings, 1, 100, a))

	// but still conflicts with the other sibling
	assert.NotNil(t, FindRangeConflict(siblings, 90, 150, a))
}
