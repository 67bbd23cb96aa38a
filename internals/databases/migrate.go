// file: internals/databases/migrate.go
package database

import (
	"log"

	courseModel "examtrack_backend/internals/features/academics/courses/model"
	programModel "examtrack_backend/internals/features/academics/programs/model"
	studentModel "examtrack_backend/internals/features/academics/students/model"
	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	attModel "examtrack_backend/internals/features/exams/attendance/model"
	invModel "examtrack_backend/internals/features/exams/invigilation/model"
	roomModel "examtrack_backend/internals/features/exams/rooms/model"
	sessModel "examtrack_backend/internals/features/exams/sessions/model"
	profileModel "examtrack_backend/internals/features/users/profiles/model"
)

// MigrateAll runs the schema migration, dependency order. Enabled with
// DB_AUTOMIGRATE=true; production schemas are applied out of band.
func MigrateAll() {
	log.Println("[INFO] Running AutoMigrate...")
	err := DB.AutoMigrate(
		&programModel.ProgramModel{},
		&courseModel.CourseModel{},
		&studentModel.StudentModel{},
		&profileModel.ProfileModel{},
		&roomModel.ExamRoomModel{},
		&sessModel.ExamSessionModel{},
		&allocModel.CourseRoomAllocationModel{},
		&invModel.InvigilationAssignmentModel{},
		&attModel.AttendanceLogModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] AutoMigrate failed: %v", err)
	}
	log.Println("[INFO] AutoMigrate done.")
}
