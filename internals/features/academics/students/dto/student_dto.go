// internals/features/academics/students/dto/student_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	model "examtrack_backend/internals/features/academics/students/model"
	"examtrack_backend/internals/helpers/indexnum"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateStudentRequest struct {
	StudentNumber      string `json:"student_number"       validate:"required,max=40"`
	StudentIndexNumber string `json:"student_index_number" validate:"required,max=40"`
	StudentFullName    string `json:"student_full_name"    validate:"required,max=160"`

	StudentProgramID string  `json:"student_program_id" validate:"required,uuid"`
	StudentClass     *string `json:"student_class"      validate:"omitempty,max=60"`

	StudentFingerprintID *string `json:"student_fingerprint_id" validate:"omitempty,max=80"`
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	indexNumber := strings.TrimSpace(r.StudentIndexNumber)
	if _, err := indexnum.ParseSuffix(indexNumber); err != nil {
		return model.StudentModel{}, fmt.Errorf("index_number must end in digits, e.g. CS/22/001")
	}
	programID, err := uuid.Parse(r.StudentProgramID)
	if err != nil {
		return model.StudentModel{}, fmt.Errorf("program_id is not a valid uuid")
	}
	return model.StudentModel{
		StudentNumber:        strings.TrimSpace(r.StudentNumber),
		StudentIndexNumber:   indexNumber,
		StudentFullName:      strings.TrimSpace(r.StudentFullName),
		StudentProgramID:     programID,
		StudentClass:         r.StudentClass,
		StudentFingerprintID: r.StudentFingerprintID,
	}, nil
}

// Bulk import payload; rows are validated one by one so a single bad row
// reports its position.
type ImportStudentsRequest struct {
	Students []CreateStudentRequest `json:"students" validate:"required,min=1,max=2000,dive"`
}
