// internals/features/exams/invigilation/controller/assignment_controller.go
package controller

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"examtrack_backend/internals/configs"
	"examtrack_backend/internals/constants"
	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	sessModel "examtrack_backend/internals/features/exams/sessions/model"
	profileModel "examtrack_backend/internals/features/users/profiles/model"
	helper "examtrack_backend/internals/helpers"
	"examtrack_backend/internals/helpers/auth"

	"examtrack_backend/internals/features/exams/invigilation/dto"
	"examtrack_backend/internals/features/exams/invigilation/model"
	"examtrack_backend/internals/features/exams/invigilation/service"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:       db,
		Validate: validator.New(),
	}
}

var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

/* =========================================================
   ASSIGN / UNASSIGN (admin)
   ========================================================= */

// POST /api/a/invigilation
func (ctl *AssignmentController) Assign(c *fiber.Ctx) error {
	assignedBy, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.AssignInvigilatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid assignment payload", helper.BuildFieldErrors(err))
	}

	assignment, err := req.ToModel(assignedBy)
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var profile profileModel.ProfileModel
		if err := tx.First(&profile, "profile_id = ?", assignment.InvigilationAssignmentProfileID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		if profile.ProfileRole != constants.RoleInvigilator {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Profile is not an invigilator")
		}

		var sess sessModel.ExamSessionModel
		if err := tx.First(&sess, "exam_session_id = ?", assignment.InvigilationAssignmentExamSessionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
			}
			return err
		}

		// only allocated rooms need watching
		var allocated int64
		if err := tx.Model(&allocModel.CourseRoomAllocationModel{}).
			Where("course_room_allocation_exam_session_id = ? AND course_room_allocation_exam_room_id = ?",
				assignment.InvigilationAssignmentExamSessionID,
				assignment.InvigilationAssignmentExamRoomID).
			Count(&allocated).Error; err != nil {
			return err
		}
		if allocated == 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Room is not allocated for this session")
		}

		// one person cannot watch two rooms whose sessions overlap in time
		var held []sessModel.ExamSessionModel
		if err := tx.Model(&sessModel.ExamSessionModel{}).
			Joins("JOIN invigilation_assignment ON invigilation_assignment.invigilation_assignment_exam_session_id = exam_session.exam_session_id").
			Where("invigilation_assignment.invigilation_assignment_profile_id = ?", assignment.InvigilationAssignmentProfileID).
			Find(&held).Error; err != nil {
			return err
		}
		if hit := service.FindScheduleConflict(held, sess); hit != nil {
			return fiber.NewError(fiber.StatusConflict, "Invigilator already has an overlapping assignment")
		}

		if !configs.AllowCoInvigilation {
			var holders int64
			if err := tx.Model(&model.InvigilationAssignmentModel{}).
				Where("invigilation_assignment_exam_session_id = ? AND invigilation_assignment_exam_room_id = ?",
					assignment.InvigilationAssignmentExamSessionID,
					assignment.InvigilationAssignmentExamRoomID).
				Count(&holders).Error; err != nil {
				return err
			}
			if holders > 0 {
				return fiber.NewError(fiber.StatusConflict, "Room already has an invigilator for this session")
			}
		}

		return tx.Create(&assignment).Error
	}, serializable)
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			if fe.Code == fiber.StatusUnprocessableEntity {
				return helper.JsonValidationError(c, fe.Message, nil)
			}
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, txErr, "Invigilator already assigned to this room")
	}
	return helper.JsonCreated(c, "Invigilator assigned", assignment)
}

// DELETE /api/a/invigilation/:id
func (ctl *AssignmentController) Unassign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.InvigilationAssignmentModel{}, "invigilation_assignment_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Invigilator unassigned", fiber.Map{"invigilation_assignment_id": id})
}

/* =========================================================
   ROSTERS
   ========================================================= */

// GET /api/a/exam-sessions/:id/invigilators
func (ctl *AssignmentController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	type row struct {
		model.InvigilationAssignmentModel

		ProfileFullName string `json:"profile_full_name"`
		ProfileEmail    string `json:"profile_email"`
		ExamRoomName    string `json:"exam_room_name"`
	}
	var rows []row
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.InvigilationAssignmentModel{}).
		Select(`invigilation_assignment.*,
			profiles.profile_full_name, profiles.profile_email,
			exam_room.exam_room_name`).
		Joins("JOIN profiles ON profiles.profile_id = invigilation_assignment.invigilation_assignment_profile_id").
		Joins("JOIN exam_room ON exam_room.exam_room_id = invigilation_assignment.invigilation_assignment_exam_room_id").
		Where("invigilation_assignment_exam_session_id = ?", sessionID).
		Order("exam_room.exam_room_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Session invigilators fetched", rows)
}

// GET /api/i/my-assignments?date=today
// The invigilator's duty roster, soonest first.
func (ctl *AssignmentController) MyAssignments(c *fiber.Ctx) error {
	profileID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.InvigilationAssignmentModel{}).
		Select(`invigilation_assignment.invigilation_assignment_id,
			exam_session.exam_session_id,
			exam_session.exam_session_exam_date,
			exam_session.exam_session_start_time,
			exam_session.exam_session_end_time,
			exam_session.exam_session_semester,
			exam_session.exam_session_academic_year,
			course.course_code, course.course_name,
			exam_room.exam_room_id, exam_room.exam_room_name, exam_room.exam_room_capacity`).
		Joins("JOIN exam_session ON exam_session.exam_session_id = invigilation_assignment.invigilation_assignment_exam_session_id").
		Joins("JOIN course ON course.course_id = exam_session.exam_session_course_id").
		Joins("JOIN exam_room ON exam_room.exam_room_id = invigilation_assignment.invigilation_assignment_exam_room_id").
		Where("invigilation_assignment.invigilation_assignment_profile_id = ?", profileID)

	if c.Query("date") == "today" {
		q = q.Where("exam_session.exam_session_exam_date = CURRENT_DATE")
	}

	var rows []dto.MyAssignmentResponse
	if err := q.
		Order("exam_session.exam_session_exam_date ASC, exam_session.exam_session_start_time ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "My assignments fetched", rows)
}
