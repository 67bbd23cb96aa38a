// internals/features/academics/programs/route/program_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/academics/programs/controller"
)

func ProgramAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db)

	r := admin.Group("/programs")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
}
