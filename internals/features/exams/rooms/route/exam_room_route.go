// internals/features/exams/rooms/route/exam_room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/exams/rooms/controller"
)

// ExamRoomAdminRoutes mounts room management under the admin group.
func ExamRoomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamRoomController(db)

	r := admin.Group("/exam-rooms")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
