// internals/features/exams/attendance/controller/attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	studentModel "examtrack_backend/internals/features/academics/students/model"
	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	invModel "examtrack_backend/internals/features/exams/invigilation/model"
	profileModel "examtrack_backend/internals/features/users/profiles/model"
	helper "examtrack_backend/internals/helpers"
	"examtrack_backend/internals/helpers/auth"
	"examtrack_backend/internals/helpers/indexnum"

	"examtrack_backend/internals/features/exams/attendance/dto"
	"examtrack_backend/internals/features/exams/attendance/model"
	"examtrack_backend/internals/features/exams/attendance/service"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Matcher  service.FingerprintMatcher
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
		Matcher:  service.DeviceMatcher{},
	}
}

/* =========================================================
   Authorization
   ========================================================= */

// requireStationAccess demands an invigilation assignment on this
// allocation's (session, room); only reads keep an admin bypass, so the
// recorded verified_by always holds an assignment. The refusal is a bare
// Forbidden; it must not leak who is assigned where.
func (ctl *AttendanceController) requireStationAccess(tx *gorm.DB, c *fiber.Ctx, alloc *allocModel.CourseRoomAllocationModel, readOnly bool) error {
	profileID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var n int64
	if err := tx.Model(&invModel.InvigilationAssignmentModel{}).
		Where(`invigilation_assignment_profile_id = ?
			AND invigilation_assignment_exam_session_id = ?
			AND invigilation_assignment_exam_room_id = ?`,
			profileID,
			alloc.CourseRoomAllocationExamSessionID,
			alloc.CourseRoomAllocationExamRoomID).
		Count(&n).Error; err != nil {
		return err
	}
	if !service.StationAllowed(auth.IsAdmin(c), n, readOnly) {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}
	return nil
}

/* =========================================================
   RECORD (invigilator station)
   ========================================================= */

// POST /api/i/attendance
func (ctl *AttendanceController) Record(c *fiber.Ctx) error {
	verifiedBy, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid attendance payload", helper.BuildFieldErrors(err))
	}
	allocationID, err := uuid.Parse(req.AttendanceLogAllocationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid allocation id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var alloc allocModel.CourseRoomAllocationModel
	if err := db.First(&alloc, "course_room_allocation_id = ?", allocationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Allocation not found")
		}
		return helper.WritePGError(c, err, "")
	}

	if err := ctl.requireStationAccess(db, c, &alloc, false); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err, "")
	}

	// range membership is judged on the submitted index number, before any
	// roster lookup, so out-of-range is always a validation failure
	inRange, err := indexnum.InRange(req.StudentIndexNumber,
		alloc.CourseRoomAllocationIndexStart, alloc.CourseRoomAllocationIndexEnd)
	if err != nil {
		return helper.JsonValidationError(c, "Index number has no numeric suffix", nil)
	}
	if !inRange {
		return helper.JsonValidationError(c, "Student is not in this room's index range", nil)
	}

	var student studentModel.StudentModel
	if err := db.First(&student, "student_index_number = ?", req.StudentIndexNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.WritePGError(c, err, "")
	}

	method := req.Method()
	var matched *bool
	switch method {
	case model.MethodBiometric:
		// a verdict submitted by the scanning device wins; otherwise ask the matcher
		if req.AttendanceLogFingerprintMatched != nil {
			matched = req.AttendanceLogFingerprintMatched
		} else {
			fingerprintID := ""
			if student.StudentFingerprintID != nil {
				fingerprintID = *student.StudentFingerprintID
			}
			ok, err := ctl.Matcher.Verify(c.UserContext(), service.StudentRef{
				StudentNumber: student.StudentNumber,
				FingerprintID: fingerprintID,
			})
			if err != nil {
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Fingerprint device unavailable, please retry")
			}
			matched = &ok
		}
		if !*matched {
			return helper.JsonValidationError(c, "Fingerprint did not match; use a manual override with a note", nil)
		}

	case model.MethodManual:
		if err := ctl.checkOverridePin(db, verifiedBy, req.OverridePin); err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.WritePGError(c, err, "")
		}
	}

	if err := service.ValidateMethodRules(method, matched, req.AttendanceLogNote); err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}

	record := model.AttendanceLogModel{
		AttendanceLogAllocationID:       alloc.CourseRoomAllocationID,
		AttendanceLogStudentNumber:      student.StudentNumber,
		AttendanceLogVerifiedBy:         verifiedBy,
		AttendanceLogMethod:             method,
		AttendanceLogFingerprintMatched: matched,
		AttendanceLogNote:               req.AttendanceLogNote,
		AttendanceLogAnswerSheetNumber:  req.AttendanceLogAnswerSheetNumber,
		AttendanceLogDeviceInfo:         req.AttendanceLogDeviceInfo,
	}

	// the unique index is the race arbiter; no pre-read
	if err := db.Create(&record).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student already verified for this allocation")
		}
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonCreated(c, "Attendance recorded", dto.AttendanceRecordResponse{
		AttendanceLogID:                 record.AttendanceLogID,
		AttendanceLogAllocationID:       record.AttendanceLogAllocationID,
		AttendanceLogStudentNumber:      record.AttendanceLogStudentNumber,
		StudentIndexNumber:              student.StudentIndexNumber,
		StudentFullName:                 student.StudentFullName,
		AttendanceLogMethod:             record.AttendanceLogMethod,
		AttendanceLogFingerprintMatched: record.AttendanceLogFingerprintMatched,
		AttendanceLogNote:               record.AttendanceLogNote,
		AttendanceLogAnswerSheetNumber:  record.AttendanceLogAnswerSheetNumber,
		AttendanceLogVerifiedBy:         record.AttendanceLogVerifiedBy,
		AttendanceLogVerifiedAt:         record.AttendanceLogVerifiedAt,
	})
}

// checkOverridePin enforces the PIN gate when the profile has one set.
func (ctl *AttendanceController) checkOverridePin(tx *gorm.DB, profileID uuid.UUID, pin *string) error {
	var profile profileModel.ProfileModel
	if err := tx.First(&profile, "profile_id = ?", profileID).Error; err != nil {
		return err
	}
	if profile.ProfileOverridePinHash == nil {
		return nil
	}
	if pin == nil {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}
	if bcrypt.CompareHashAndPassword([]byte(*profile.ProfileOverridePinHash), []byte(*pin)) != nil {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}
	return nil
}

/* =========================================================
   QUERY
   ========================================================= */

// GET /api/i/allocations/:id/attendance
func (ctl *AttendanceController) ListByAllocation(c *fiber.Ctx) error {
	allocationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid allocation id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var alloc allocModel.CourseRoomAllocationModel
	if err := db.First(&alloc, "course_room_allocation_id = ?", allocationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Allocation not found")
		}
		return helper.WritePGError(c, err, "")
	}
	if err := ctl.requireStationAccess(db, c, &alloc, true); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err, "")
	}

	var rows []dto.AttendanceRecordResponse
	if err := db.Model(&model.AttendanceLogModel{}).
		Select(`attendance_log.attendance_log_id,
			attendance_log.attendance_log_allocation_id,
			attendance_log.attendance_log_student_number,
			student.student_index_number, student.student_full_name,
			attendance_log.attendance_log_method,
			attendance_log.attendance_log_fingerprint_matched,
			attendance_log.attendance_log_note,
			attendance_log.attendance_log_answer_sheet_number,
			attendance_log.attendance_log_verified_by,
			attendance_log.attendance_log_verified_at`).
		Joins("JOIN student ON student.student_number = attendance_log.attendance_log_student_number").
		Where("attendance_log_allocation_id = ?", allocationID).
		Order("attendance_log_verified_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Attendance records fetched", rows)
}
