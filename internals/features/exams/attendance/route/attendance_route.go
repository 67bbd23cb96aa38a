// internals/features/exams/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/constants"
	"examtrack_backend/internals/features/exams/attendance/controller"
	"examtrack_backend/internals/middlewares"
	authMiddleware "examtrack_backend/internals/middlewares/auth"
)

// AttendanceInvigilatorRoutes mounts the verification station endpoints.
// The scan endpoint gets its own tighter rate limit: one station, one
// student at a time. Recording requires an assignment, and only
// invigilator profiles can hold one, so the POST is invigilator only.
func AttendanceInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	inv.Post("/attendance",
		authMiddleware.RequireRoles(constants.InvigilatorOnly...),
		middlewares.ScanRateLimiter(),
		ctl.Record)
	inv.Get("/allocations/:id/attendance", ctl.ListByAllocation)
}

// AttendanceAdminRoutes lets admins audit any allocation's log.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	admin.Get("/allocations/:id/attendance", ctl.ListByAllocation)
}
