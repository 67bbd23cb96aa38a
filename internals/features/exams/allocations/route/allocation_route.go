// internals/features/exams/allocations/route/allocation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/exams/allocations/controller"
)

// AllocationAdminRoutes mounts allocation management under the admin group.
func AllocationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAllocationController(db)

	admin.Get("/exam-sessions/:id/allocations", ctl.ListBySession)
	admin.Get("/exam-sessions/:id/available-rooms", ctl.AvailableRooms)

	r := admin.Group("/allocations")
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}

// AllocationInvigilatorRoutes exposes the read side the station needs.
func AllocationInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	ctl := controller.NewAllocationController(db)

	inv.Get("/exam-sessions/:id/allocations", ctl.ListBySession)
}
