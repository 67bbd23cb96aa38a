// file: internals/features/exams/reports/service/stats.go
package service

import (
	"github.com/google/uuid"

	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	attModel "examtrack_backend/internals/features/exams/attendance/model"
)

// AllocationStats is the per-room breakdown of one session.
type AllocationStats struct {
	AllocationID uuid.UUID `json:"allocation_id"`
	ExamRoomID   uuid.UUID `json:"exam_room_id"`
	Expected     int       `json:"expected"`
	Present      int       `json:"present"`
	Overrides    int       `json:"overrides"`
	Absent       int       `json:"absent"`
	Rate         float64   `json:"rate"`
}

// SessionStats sums the allocations of one session.
type SessionStats struct {
	Expected  int     `json:"expected"`
	Present   int     `json:"present"`
	Overrides int     `json:"overrides"`
	Absent    int     `json:"absent"`
	Rate      float64 `json:"rate"`

	Allocations []AllocationStats `json:"allocations"`
}

// Rate is the single canonical attendance-rate definition:
// (present + overrides) / expected. Anything else (records/allocations,
// students/capacity) is wrong and must not reappear.
func Rate(present, overrides, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return float64(present+overrides) / float64(expected)
}

// ComputeSessionStats derives the session breakdown from raw rows.
// expected = student_count, present = biometric records, overrides = manual
// records, absent = expected - present - overrides. Always computed on
// demand; nothing here is cached.
func ComputeSessionStats(allocs []allocModel.CourseRoomAllocationModel, records []attModel.AttendanceLogModel) SessionStats {
	type counts struct{ present, overrides int }
	byAlloc := make(map[uuid.UUID]*counts, len(allocs))
	for i := range allocs {
		byAlloc[allocs[i].CourseRoomAllocationID] = &counts{}
	}
	for i := range records {
		r := &records[i]
		c, ok := byAlloc[r.AttendanceLogAllocationID]
		if !ok {
			continue // record of another session
		}
		switch r.AttendanceLogMethod {
		case attModel.MethodBiometric:
			c.present++
		case attModel.MethodManual:
			c.overrides++
		}
	}

	out := SessionStats{Allocations: make([]AllocationStats, 0, len(allocs))}
	for i := range allocs {
		a := &allocs[i]
		c := byAlloc[a.CourseRoomAllocationID]
		expected := a.CourseRoomAllocationStudentCount
		as := AllocationStats{
			AllocationID: a.CourseRoomAllocationID,
			ExamRoomID:   a.CourseRoomAllocationExamRoomID,
			Expected:     expected,
			Present:      c.present,
			Overrides:    c.overrides,
			Absent:       expected - c.present - c.overrides,
			Rate:         Rate(c.present, c.overrides, expected),
		}
		out.Allocations = append(out.Allocations, as)
		out.Expected += as.Expected
		out.Present += as.Present
		out.Overrides += as.Overrides
		out.Absent += as.Absent
	}
	out.Rate = Rate(out.Present, out.Overrides, out.Expected)
	return out
}
