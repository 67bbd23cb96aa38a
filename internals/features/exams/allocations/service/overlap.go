// file: internals/features/exams/allocations/service/overlap.go
package service

import (
	"github.com/google/uuid"

	model "examtrack_backend/internals/features/exams/allocations/model"
)

// RangesOverlap is the inclusive interval test for index ranges:
// [aStart,aEnd] and [bStart,bEnd] share at least one index number.
func RangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// FindRangeConflict returns the first sibling allocation whose index range
// overlaps [start, end], skipping excludeID (the record being updated).
// Callers pass the allocations of one session; ranges must not collide
// session-wide even across different rooms.
func FindRangeConflict(siblings []model.CourseRoomAllocationModel, start, end int, excludeID uuid.UUID) *model.CourseRoomAllocationModel {
	for i := range siblings {
		s := &siblings[i]
		if s.CourseRoomAllocationID == excludeID {
			continue
		}
		if RangesOverlap(start, end, s.CourseRoomAllocationIndexStart, s.CourseRoomAllocationIndexEnd) {
			return s
		}
	}
	return nil
}
