// internals/features/users/profiles/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/features/users/profiles/controller"
)

// ProfileAdminRoutes mounts profile administration under the admin group.
func ProfileAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfileController(db)

	r := admin.Group("/profiles")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Upsert)
}

// ProfileUserRoutes mounts the self endpoints for any signed-in role.
func ProfileUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfileController(db)

	user.Get("/me", ctl.Me)
}
