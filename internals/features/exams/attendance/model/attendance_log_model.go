package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceMethod string

const (
	MethodBiometric AttendanceMethod = "biometric"
	MethodManual    AttendanceMethod = "manual"
)

// Append-only audit fact: one row per verified (allocation, student_number).
// The unique index is the exactly-once guarantee: two devices scanning the
// same student race on the insert and the loser gets a conflict. Corrections
// are new rows with an explicit note, never edits.
type AttendanceLogModel struct {
	AttendanceLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_log_id" json:"attendance_log_id"`

	AttendanceLogAllocationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_log_allocation;uniqueIndex:uq_attendance_log_alloc_student,priority:1;column:attendance_log_allocation_id" json:"attendance_log_allocation_id"`
	AttendanceLogStudentNumber string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_attendance_log_alloc_student,priority:2;column:attendance_log_student_number" json:"attendance_log_student_number"`

	AttendanceLogVerifiedBy uuid.UUID        `gorm:"type:uuid;not null;index:idx_attendance_log_verified_by;column:attendance_log_verified_by" json:"attendance_log_verified_by"`
	AttendanceLogMethod     AttendanceMethod `gorm:"type:varchar(12);not null;column:attendance_log_method" json:"attendance_log_method"`

	AttendanceLogFingerprintMatched *bool   `gorm:"column:attendance_log_fingerprint_matched" json:"attendance_log_fingerprint_matched,omitempty"`
	AttendanceLogNote               *string `gorm:"type:text;column:attendance_log_note" json:"attendance_log_note,omitempty"`
	AttendanceLogAnswerSheetNumber  *string `gorm:"type:varchar(40);column:attendance_log_answer_sheet_number" json:"attendance_log_answer_sheet_number,omitempty"`

	// scanner device metadata (model, firmware, scan quality), shape varies per device
	AttendanceLogDeviceInfo datatypes.JSON `gorm:"type:jsonb;column:attendance_log_device_info" json:"attendance_log_device_info,omitempty"`

	AttendanceLogVerifiedAt time.Time `gorm:"column:attendance_log_verified_at;autoCreateTime" json:"attendance_log_verified_at"`
}

func (AttendanceLogModel) TableName() string {
	return "attendance_log"
}
