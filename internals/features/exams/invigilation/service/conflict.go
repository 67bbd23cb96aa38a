// file: internals/features/exams/invigilation/service/conflict.go
package service

import (
	"time"

	sessModel "examtrack_backend/internals/features/exams/sessions/model"
)

// WindowsOverlap is the half-open time-window test: [aStart,aEnd) vs
// [bStart,bEnd). A shared boundary (one ends when the other starts) is
// allowed, so 09:00–12:00 and 12:00–14:00 do not conflict.
func WindowsOverlap(aStartMin, aEndMin, bStartMin, bEndMin int) bool {
	return aStartMin < bEndMin && bStartMin < aEndMin
}

// FindScheduleConflict returns the first session among the invigilator's
// existing duties whose window overlaps the candidate session on the same
// exam date. held must not contain the candidate itself.
func FindScheduleConflict(held []sessModel.ExamSessionModel, candidate sessModel.ExamSessionModel) *sessModel.ExamSessionModel {
	cs := candidate.ExamSessionStartTime.Minutes()
	ce := candidate.ExamSessionEndTime.Minutes()
	for i := range held {
		h := &held[i]
		if !sameDay(h.ExamSessionExamDate, candidate.ExamSessionExamDate) {
			continue
		}
		if WindowsOverlap(h.ExamSessionStartTime.Minutes(), h.ExamSessionEndTime.Minutes(), cs, ce) {
			return h
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
