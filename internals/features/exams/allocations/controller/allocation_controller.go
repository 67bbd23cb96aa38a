// internals/features/exams/allocations/controller/allocation_controller.go
package controller

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "examtrack_backend/internals/features/exams/attendance/model"
	roomModel "examtrack_backend/internals/features/exams/rooms/model"
	sessModel "examtrack_backend/internals/features/exams/sessions/model"
	helper "examtrack_backend/internals/helpers"

	"examtrack_backend/internals/features/exams/allocations/dto"
	"examtrack_backend/internals/features/exams/allocations/model"
	"examtrack_backend/internals/features/exams/allocations/service"
)

type AllocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAllocationController(db *gorm.DB) *AllocationController {
	return &AllocationController{
		DB:       db,
		Validate: validator.New(),
	}
}

// serializable keeps the read-check-write of overlap validation atomic
// against a concurrent allocation of the same session. 40001 surfaces as
// 503 via MapPGError and the client retries.
var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

/* =========================================================
   Shared checks
   ========================================================= */

func (ctl *AllocationController) validateAgainstSiblings(tx *gorm.DB, alloc *model.CourseRoomAllocationModel, excludeID uuid.UUID) error {
	var room roomModel.ExamRoomModel
	if err := tx.First(&room, "exam_room_id = ?", alloc.CourseRoomAllocationExamRoomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Exam room not found")
		}
		return err
	}
	if alloc.CourseRoomAllocationStudentCount > room.ExamRoomCapacity {
		return fiber.NewError(fiber.StatusConflict, "Student count exceeds room capacity")
	}

	rangeSize := alloc.CourseRoomAllocationIndexEnd - alloc.CourseRoomAllocationIndexStart + 1
	if alloc.CourseRoomAllocationStudentCount > rangeSize {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Student count exceeds the index range size")
	}

	// ranges of the same session must not overlap, regardless of room
	var siblings []model.CourseRoomAllocationModel
	if err := tx.
		Where("course_room_allocation_exam_session_id = ?", alloc.CourseRoomAllocationExamSessionID).
		Find(&siblings).Error; err != nil {
		return err
	}
	if hit := service.FindRangeConflict(siblings,
		alloc.CourseRoomAllocationIndexStart,
		alloc.CourseRoomAllocationIndexEnd,
		excludeID); hit != nil {
		return fiber.NewError(fiber.StatusConflict, "Index range overlaps an existing allocation of this session")
	}
	return nil
}

func writeTxError(c *fiber.Ctx, err error, conflictMsg string) error {
	if fe, ok := err.(*fiber.Error); ok {
		if fe.Code == fiber.StatusUnprocessableEntity {
			return helper.JsonValidationError(c, fe.Message, nil)
		}
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "Allocation not found")
	}
	return helper.WritePGError(c, err, conflictMsg)
}

/* =========================================================
   LIST
   ========================================================= */

// GET /api/a/exam-sessions/:id/allocations
func (ctl *AllocationController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var rows []dto.AllocationWithRoomResponse
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CourseRoomAllocationModel{}).
		Select("course_room_allocation.*, exam_room.exam_room_name, exam_room.exam_room_capacity").
		Joins("JOIN exam_room ON exam_room.exam_room_id = course_room_allocation.course_room_allocation_exam_room_id").
		Where("course_room_allocation_exam_session_id = ?", sessionID).
		Order("course_room_allocation_index_start ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Allocations fetched", rows)
}

// GET /api/a/exam-sessions/:id/available-rooms?min_capacity=
// Rooms not yet allocated for this session, for the allocation picker.
func (ctl *AllocationController) AvailableRooms(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where(`exam_room_id NOT IN (
			SELECT course_room_allocation_exam_room_id
			FROM course_room_allocation
			WHERE course_room_allocation_exam_session_id = ?)`, sessionID)
	if minCap := c.QueryInt("min_capacity", 0); minCap > 0 {
		q = q.Where("exam_room_capacity >= ?", minCap)
	}

	var rooms []roomModel.ExamRoomModel
	if err := q.Order("exam_room_name ASC").Find(&rooms).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Available rooms fetched", rooms)
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

// POST /api/a/allocations
func (ctl *AllocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid allocation payload", helper.BuildFieldErrors(err))
	}

	alloc, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var sess sessModel.ExamSessionModel
		if err := tx.First(&sess, "exam_session_id = ?", alloc.CourseRoomAllocationExamSessionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
			}
			return err
		}
		// the allocation always carries the session's course
		alloc.CourseRoomAllocationCourseID = sess.ExamSessionCourseID

		if err := ctl.validateAgainstSiblings(tx, &alloc, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(&alloc).Error
	}, serializable)
	if txErr != nil {
		return writeTxError(c, txErr, "Room already allocated for this session")
	}
	return helper.JsonCreated(c, "Allocation created", alloc)
}

// PUT /api/a/allocations/:id
func (ctl *AllocationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid allocation id")
	}

	var req dto.UpdateAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid allocation payload", helper.BuildFieldErrors(err))
	}

	var alloc model.CourseRoomAllocationModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&alloc, "course_room_allocation_id = ?", id).Error; err != nil {
			return err
		}

		// once a student is verified against this allocation the range is frozen
		var verified int64
		if err := tx.Model(&attModel.AttendanceLogModel{}).
			Where("attendance_log_allocation_id = ?", id).
			Count(&verified).Error; err != nil {
			return err
		}
		if verified > 0 {
			return fiber.NewError(fiber.StatusConflict, "Allocation already has attendance records")
		}

		if err := req.Apply(&alloc); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		if err := ctl.validateAgainstSiblings(tx, &alloc, alloc.CourseRoomAllocationID); err != nil {
			return err
		}
		return tx.Save(&alloc).Error
	}, serializable)
	if txErr != nil {
		return writeTxError(c, txErr, "Room already allocated for this session")
	}
	return helper.JsonUpdated(c, "Allocation updated", alloc)
}

// DELETE /api/a/allocations/:id
func (ctl *AllocationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid allocation id")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var verified int64
		if err := tx.Model(&attModel.AttendanceLogModel{}).
			Where("attendance_log_allocation_id = ?", id).
			Count(&verified).Error; err != nil {
			return err
		}
		if verified > 0 {
			return fiber.NewError(fiber.StatusConflict, "Allocation already has attendance records")
		}

		res := tx.Delete(&model.CourseRoomAllocationModel{}, "course_room_allocation_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		return writeTxError(c, txErr, "")
	}
	return helper.JsonDeleted(c, "Allocation deleted", fiber.Map{"course_room_allocation_id": id})
}
