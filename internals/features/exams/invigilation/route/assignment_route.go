// internals/features/exams/invigilation/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/exams/invigilation/controller"
)

// AssignmentAdminRoutes mounts assignment management under the admin group.
func AssignmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAssignmentController(db)

	admin.Get("/exam-sessions/:id/invigilators", ctl.ListBySession)

	r := admin.Group("/invigilation")
	r.Post("/", ctl.Assign)
	r.Delete("/:id", ctl.Unassign)
}

// AssignmentInvigilatorRoutes exposes the personal duty roster.
func AssignmentInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	ctl := controller.NewAssignmentController(db)

	inv.Get("/my-assignments", ctl.MyAssignments)
}
