// file: internals/route/details/exams_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocationRoute "examtrack_backend/internals/features/exams/allocations/route"
	attendanceRoute "examtrack_backend/internals/features/exams/attendance/route"
	invigilationRoute "examtrack_backend/internals/features/exams/invigilation/route"
	reportRoute "examtrack_backend/internals/features/exams/reports/route"
	roomRoute "examtrack_backend/internals/features/exams/rooms/route"
	sessionRoute "examtrack_backend/internals/features/exams/sessions/route"
)

// ExamsAdminRoutes wires scheduling, allocation, invigilation management,
// attendance auditing and reports into the admin group.
func ExamsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	roomRoute.ExamRoomAdminRoutes(admin, db)
	sessionRoute.ExamSessionAdminRoutes(admin, db)
	allocationRoute.AllocationAdminRoutes(admin, db)
	invigilationRoute.AssignmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}

// ExamsInvigilatorRoutes wires the verification-station surface: the duty
// roster, the room's allocations and the attendance endpoints.
func ExamsInvigilatorRoutes(inv fiber.Router, db *gorm.DB) {
	invigilationRoute.AssignmentInvigilatorRoutes(inv, db)
	allocationRoute.AllocationInvigilatorRoutes(inv, db)
	attendanceRoute.AttendanceInvigilatorRoutes(inv, db)
}
