// internals/features/academics/programs/dto/program_dto.go
package dto

import (
	"strings"

	model "examtrack_backend/internals/features/academics/programs/model"
)

type CreateProgramRequest struct {
	ProgramName string `json:"program_name" validate:"required,max=160"`
	ProgramCode string `json:"program_code" validate:"required,max=32"`
}

func (r CreateProgramRequest) ToModel() model.ProgramModel {
	return model.ProgramModel{
		ProgramName: strings.TrimSpace(r.ProgramName),
		ProgramCode: strings.ToUpper(strings.TrimSpace(r.ProgramCode)),
	}
}
