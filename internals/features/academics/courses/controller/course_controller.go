// internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "examtrack_backend/internals/helpers"

	"examtrack_backend/internals/features/academics/courses/dto"
	"examtrack_backend/internals/features/academics/courses/model"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:       db,
		Validate: validator.New(),
	}
}

// GET /api/a/courses?search=&program_id=&page=&per_page=
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("course_code ILIKE ? OR course_name ILIKE ?", like, like)
	}
	if programID := strings.TrimSpace(c.Query("program_id")); programID != "" {
		id, err := uuid.Parse(programID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program_id filter")
		}
		q = q.Where("course_program_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	var rows []model.CourseModel
	if err := q.Order("course_code ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonList(c, "Courses fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Course fetched", course)
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid course payload", helper.BuildFieldErrors(err))
	}

	course, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		return helper.WritePGError(c, err, "Course code already exists")
	}
	return helper.JsonCreated(c, "Course created", course)
}
