// internals/features/exams/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "examtrack_backend/internals/features/exams/attendance/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// RecordAttendanceRequest is one verification attempt at the scanning
// station. The student is addressed by index number (what the hall list
// shows), never by internal id.
type RecordAttendanceRequest struct {
	AttendanceLogAllocationID string `json:"attendance_log_allocation_id" validate:"required,uuid"`
	StudentIndexNumber        string `json:"student_index_number"         validate:"required,max=40"`

	AttendanceLogMethod string `json:"attendance_log_method" validate:"required,oneof=biometric manual"`

	// a scanner that already matched on-device submits true; when absent the
	// server-side matcher is invoked instead
	AttendanceLogFingerprintMatched *bool `json:"attendance_log_fingerprint_matched" validate:"omitempty"`

	// manual overrides must explain themselves; the PIN gate applies when
	// the invigilator profile has one configured
	AttendanceLogNote *string `json:"attendance_log_note"  validate:"omitempty,max=500"`
	OverridePin       *string `json:"override_pin"         validate:"omitempty,min=4,max=12"`

	AttendanceLogAnswerSheetNumber *string        `json:"attendance_log_answer_sheet_number" validate:"omitempty,max=40"`
	AttendanceLogDeviceInfo        datatypes.JSON `json:"attendance_log_device_info"         validate:"omitempty"`
}

func (r RecordAttendanceRequest) Method() model.AttendanceMethod {
	return model.AttendanceMethod(strings.ToLower(strings.TrimSpace(r.AttendanceLogMethod)))
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// AttendanceRecordResponse joins the student identity the hall list shows.
type AttendanceRecordResponse struct {
	AttendanceLogID uuid.UUID `json:"attendance_log_id"`

	AttendanceLogAllocationID  uuid.UUID `json:"attendance_log_allocation_id"`
	AttendanceLogStudentNumber string    `json:"attendance_log_student_number"`
	StudentIndexNumber         string    `json:"student_index_number"`
	StudentFullName            string    `json:"student_full_name"`

	AttendanceLogMethod             model.AttendanceMethod `json:"attendance_log_method"`
	AttendanceLogFingerprintMatched *bool                  `json:"attendance_log_fingerprint_matched,omitempty"`
	AttendanceLogNote               *string                `json:"attendance_log_note,omitempty"`
	AttendanceLogAnswerSheetNumber  *string                `json:"attendance_log_answer_sheet_number,omitempty"`

	AttendanceLogVerifiedBy uuid.UUID `json:"attendance_log_verified_by"`
	AttendanceLogVerifiedAt time.Time `json:"attendance_log_verified_at"`
}
