// internals/features/exams/sessions/controller/exam_session_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "examtrack_backend/internals/features/academics/courses/model"
	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	"examtrack_backend/internals/features/exams/sessions/dto"
	"examtrack_backend/internals/features/exams/sessions/model"
	helper "examtrack_backend/internals/helpers"
)

type ExamSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamSessionController(db *gorm.DB) *ExamSessionController {
	return &ExamSessionController{
		DB:       db,
		Validate: validator.New(),
	}
}

// countAllocations tells whether the schedule is already committed to rooms.
func (ctl *ExamSessionController) countAllocations(tx *gorm.DB, sessionID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&allocModel.CourseRoomAllocationModel{}).
		Where("course_room_allocation_exam_session_id = ?", sessionID).
		Count(&n).Error
	return n, err
}

/* =========================================================
   LIST & DETAIL
   ========================================================= */

// GET /api/a/exam-sessions?date=today|YYYY-MM-DD&course_id=&page=&per_page=
func (ctl *ExamSessionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ExamSessionModel{})

	switch date := strings.TrimSpace(c.Query("date")); {
	case date == "today":
		q = q.Where("exam_session_exam_date = ?", time.Now().Format("2006-01-02"))
	case date != "":
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD or today")
		}
		q = q.Where("exam_session_exam_date = ?", date)
	}

	if courseID := strings.TrimSpace(c.Query("course_id")); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id filter")
		}
		q = q.Where("exam_session_course_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	var rows []model.ExamSessionModel
	if err := q.Order("exam_session_exam_date ASC, exam_session_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonList(c, "Exam sessions fetched", dto.NewExamSessionResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/exam-sessions/:id
func (ctl *ExamSessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var sess model.ExamSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&sess, "exam_session_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam session not found")
		}
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Exam session fetched", dto.NewExamSessionResponse(&sess))
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

// POST /api/a/exam-sessions
func (ctl *ExamSessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid exam session payload", helper.BuildFieldErrors(err))
	}

	sess, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}

	var courseCount int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&courseModel.CourseModel{}).
		Where("course_id = ?", sess.ExamSessionCourseID).
		Count(&courseCount).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&sess).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonCreated(c, "Exam session created", dto.NewExamSessionResponse(&sess))
}

// PUT /api/a/exam-sessions/:id
// Sessions are immutable once any room allocation exists; reschedules go
// through delete-allocations-first, on purpose.
func (ctl *ExamSessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.UpdateExamSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid exam session payload", helper.BuildFieldErrors(err))
	}

	var sess model.ExamSessionModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sess, "exam_session_id = ?", id).Error; err != nil {
			return err
		}

		allocated, err := ctl.countAllocations(tx, id)
		if err != nil {
			return err
		}
		if allocated > 0 {
			return fiber.NewError(fiber.StatusConflict, "Session already has room allocations; remove them first")
		}

		if err := req.Apply(&sess); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return tx.Save(&sess).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			if fe.Code == fiber.StatusUnprocessableEntity {
				return helper.JsonValidationError(c, fe.Message, nil)
			}
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if txErr == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam session not found")
		}
		return helper.WritePGError(c, txErr, "")
	}
	return helper.JsonUpdated(c, "Exam session updated", dto.NewExamSessionResponse(&sess))
}

// DELETE /api/a/exam-sessions/:id
func (ctl *ExamSessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		allocated, err := ctl.countAllocations(tx, id)
		if err != nil {
			return err
		}
		if allocated > 0 {
			return fiber.NewError(fiber.StatusConflict, "Session already has room allocations; remove them first")
		}

		res := tx.Delete(&model.ExamSessionModel{}, "exam_session_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if txErr == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam session not found")
		}
		return helper.WritePGError(c, txErr, "")
	}
	return helper.JsonDeleted(c, "Exam session deleted", fiber.Map{"exam_session_id": id})
}
