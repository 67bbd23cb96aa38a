// file: internals/route/details/academics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "examtrack_backend/internals/features/academics/courses/route"
	programRoute "examtrack_backend/internals/features/academics/programs/route"
	studentRoute "examtrack_backend/internals/features/academics/students/route"
)

// AcademicsAdminRoutes wires the reference-data features (programs, courses,
// student roster) into the admin group.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	programRoute.ProgramAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
}

// AcademicsInvigilatorRoutes wires the lookups the station is allowed.
func AcademicsInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	studentRoute.StudentInvigilatorRoutes(inv, db)
}
