// file: internals/route/details/users_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileRoute "examtrack_backend/internals/features/users/profiles/route"
)

func UsersAdminRoutes(admin fiber.Router, db *gorm.DB) {
	profileRoute.ProfileAdminRoutes(admin, db)
}

func UsersSelfRoutes(user fiber.Router, db *gorm.DB) {
	profileRoute.ProfileUserRoutes(user, db)
}
