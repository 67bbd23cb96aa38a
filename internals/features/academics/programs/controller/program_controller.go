// internals/features/academics/programs/controller/program_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "examtrack_backend/internals/helpers"

	"examtrack_backend/internals/features/academics/programs/dto"
	"examtrack_backend/internals/features/academics/programs/model"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{
		DB:       db,
		Validate: validator.New(),
	}
}

// GET /api/a/programs
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("program_code ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Programs fetched", rows)
}

// POST /api/a/programs
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid program payload", helper.BuildFieldErrors(err))
	}

	program := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&program).Error; err != nil {
		return helper.WritePGError(c, err, "Program code already exists")
	}
	return helper.JsonCreated(c, "Program created", program)
}
