package model

import (
	"time"

	"github.com/google/uuid"
)

// Binds one invigilator profile to a (session, room) pair. The unique index
// blocks exact duplicates; the single-holder policy (no co-invigilation) is
// enforced transactionally in the controller because it is configurable.
type InvigilationAssignmentModel struct {
	InvigilationAssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:invigilation_assignment_id" json:"invigilation_assignment_id"`

	InvigilationAssignmentProfileID     uuid.UUID `gorm:"type:uuid;not null;index:idx_ia_profile;uniqueIndex:uq_ia_session_room_profile,priority:3;column:invigilation_assignment_profile_id" json:"invigilation_assignment_profile_id"`
	InvigilationAssignmentExamSessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_ia_session;uniqueIndex:uq_ia_session_room_profile,priority:1;column:invigilation_assignment_exam_session_id" json:"invigilation_assignment_exam_session_id"`
	InvigilationAssignmentExamRoomID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_ia_session_room_profile,priority:2;column:invigilation_assignment_exam_room_id" json:"invigilation_assignment_exam_room_id"`

	InvigilationAssignmentAssignedBy uuid.UUID `gorm:"type:uuid;not null;column:invigilation_assignment_assigned_by" json:"invigilation_assignment_assigned_by"`

	InvigilationAssignmentCreatedAt time.Time `gorm:"column:invigilation_assignment_created_at;autoCreateTime" json:"invigilation_assignment_created_at"`
}

func (InvigilationAssignmentModel) TableName() string {
	return "invigilation_assignment"
}
