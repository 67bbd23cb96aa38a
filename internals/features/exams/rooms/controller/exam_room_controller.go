// internals/features/exams/rooms/controller/exam_room_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	"examtrack_backend/internals/features/exams/rooms/dto"
	"examtrack_backend/internals/features/exams/rooms/model"
	helper "examtrack_backend/internals/helpers"
)

type ExamRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamRoomController(db *gorm.DB) *ExamRoomController {
	return &ExamRoomController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* =========================================================
   LIST & DETAIL
   ========================================================= */

// GET /api/a/exam-rooms?search=&page=&per_page=
func (ctl *ExamRoomController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ExamRoomModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("exam_room_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	var rows []model.ExamRoomModel
	if err := q.Order("exam_room_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonList(c, "Exam rooms fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/exam-rooms/:id
func (ctl *ExamRoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid room id")
	}

	var room model.ExamRoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&room, "exam_room_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam room not found")
		}
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Exam room fetched", room)
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

// POST /api/a/exam-rooms
func (ctl *ExamRoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid exam room payload", helper.BuildFieldErrors(err))
	}

	room := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&room).Error; err != nil {
		return helper.WritePGError(c, err, "Room name already in use")
	}
	return helper.JsonCreated(c, "Exam room created", room)
}

// PUT /api/a/exam-rooms/:id
func (ctl *ExamRoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid room id")
	}

	var req dto.UpdateExamRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid exam room payload", helper.BuildFieldErrors(err))
	}

	var room model.ExamRoomModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, "exam_room_id = ?", id).Error; err != nil {
			return err
		}
		req.Apply(&room)

		// shrinking below a committed allocation would strand students
		if req.ExamRoomCapacity != nil {
			var maxCount int
			if err := tx.Model(&allocModel.CourseRoomAllocationModel{}).
				Where("course_room_allocation_exam_room_id = ?", id).
				Select("COALESCE(MAX(course_room_allocation_student_count), 0)").
				Scan(&maxCount).Error; err != nil {
				return err
			}
			if room.ExamRoomCapacity < maxCount {
				return fiber.NewError(fiber.StatusConflict, "Capacity is below an existing allocation for this room")
			}
		}
		return tx.Save(&room).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if txErr == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam room not found")
		}
		return helper.WritePGError(c, txErr, "Room name already in use")
	}
	return helper.JsonUpdated(c, "Exam room updated", room)
}

// DELETE /api/a/exam-rooms/:id
func (ctl *ExamRoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid room id")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&allocModel.CourseRoomAllocationModel{}).
			Where("course_room_allocation_exam_room_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fiber.NewError(fiber.StatusConflict, "Room is referenced by allocations")
		}

		res := tx.Delete(&model.ExamRoomModel{}, "exam_room_id = ?", id)
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
			return helper.JsonError(c, fiber.StatusNotFound, "Exam room not found")
		}
		return helper.WritePGError(c, txErr, "")
	}
	return helper.JsonDeleted(c, "Exam room deleted", fiber.Map{"exam_room_id": id})
}
