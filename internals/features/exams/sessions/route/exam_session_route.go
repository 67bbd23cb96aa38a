// internals/features/exams/sessions/route/exam_session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/exams/sessions/controller"
)

// ExamSessionAdminRoutes mounts the timetable CRUD under the admin group.
// Allocation and invigilator sub-resources of a session are mounted by
// their own features.
func ExamSessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamSessionController(db)

	r := admin.Group("/exam-sessions")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
