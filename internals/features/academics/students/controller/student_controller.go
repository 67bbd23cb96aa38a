// internals/features/academics/students/controller/student_controller.go
package controller

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "examtrack_backend/internals/helpers"

	"examtrack_backend/internals/features/academics/students/dto"
	"examtrack_backend/internals/features/academics/students/model"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* =========================================================
   LIST & DETAIL
   ========================================================= */

// GET /api/a/students?search=&program_id=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"student_full_name ILIKE ? OR student_index_number ILIKE ? OR student_number ILIKE ?",
			like, like, like)
	}
	if programID := strings.TrimSpace(c.Query("program_id")); programID != "" {
		id, err := uuid.Parse(programID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program_id filter")
		}
		q = q.Where("student_program_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	var rows []model.StudentModel
	if err := q.Order("student_index_number ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonList(c, "Students fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/students/by-index/:index_number
// :index_number arrives URL-encoded ("CS%2F22%2F001").
func (ctl *StudentController) GetByIndexNumber(c *fiber.Ctx) error {
	indexNumber, err := url.PathUnescape(c.Params("index_number"))
	if err != nil || strings.TrimSpace(indexNumber) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid index number")
	}

	var student model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&student, "student_index_number = ?", indexNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Student fetched", student)
}

/* =========================================================
   CREATE & BULK IMPORT (admin)
   ========================================================= */

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid student payload", helper.BuildFieldErrors(err))
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return helper.WritePGError(c, err, "Student number or index number already exists")
	}
	return helper.JsonCreated(c, "Student created", student)
}

// POST /api/a/students/import
// All-or-nothing; one bad row rolls back the whole batch and names itself.
func (ctl *StudentController) Import(c *fiber.Ctx) error {
	var req dto.ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid import payload", helper.BuildFieldErrors(err))
	}

	students := make([]model.StudentModel, 0, len(req.Students))
	for i, row := range req.Students {
		m, err := row.ToModel()
		if err != nil {
			return helper.JsonValidationError(c,
				fmt.Sprintf("Row %d: %s", i+1, err.Error()), nil)
		}
		students = append(students, m)
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&students, 200).Error
	})
	if txErr != nil {
		return helper.WritePGError(c, txErr, "Duplicate student number or index number in batch")
	}
	return helper.JsonCreated(c, "Students imported", fiber.Map{"imported": len(students)})
}
