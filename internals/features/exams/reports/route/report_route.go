// internals/features/exams/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/exams/reports/controller"
)

// ReportAdminRoutes mounts the reporting endpoints under the admin group.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r := admin.Group("/reports")
	r.Get("/dashboard", ctl.Dashboard)
	r.Get("/sessions/:id", ctl.SessionStats)
}
