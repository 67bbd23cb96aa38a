// internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=32"`
	CourseName string `json:"course_name" validate:"required,max=160"`

	CourseProgramID string `json:"course_program_id" validate:"required,uuid"`
}

func (r CreateCourseRequest) ToModel() (model.CourseModel, error) {
	programID, err := uuid.Parse(r.CourseProgramID)
	if err != nil {
		return model.CourseModel{}, fmt.Errorf("program_id is not a valid uuid")
	}
	return model.CourseModel{
		CourseCode:      strings.ToUpper(strings.TrimSpace(r.CourseCode)),
		CourseName:      strings.TrimSpace(r.CourseName),
		CourseProgramID: programID,
	}, nil
}
