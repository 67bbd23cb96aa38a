// internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/academics/students/controller"
)

// StudentAdminRoutes mounts the roster endpoints under the admin group.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	r := admin.Group("/students")
	r.Get("/", ctl.List)
	r.Get("/by-index/:index_number", ctl.GetByIndexNumber)
	r.Post("/", ctl.Create)
	r.Post("/import", ctl.Import)
}

// StudentInvigilatorRoutes lets the station look a student up by index.
func StudentInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	inv.Get("/students/by-index/:index_number", ctl.GetByIndexNumber)
}
