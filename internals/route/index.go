// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examtrack_backend/internals/constants"
	authMiddleware "examtrack_backend/internals/middlewares/auth"
	routeDetails "examtrack_backend/internals/route/details"
)

// SetupRoutes mounts the three surfaces:
//
//	/api/a: exam-office administration (admin only)
//	/api/i: verification station (invigilators; admins may audit reads)
//	/api/u: self endpoints for any signed-in role
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRoles(constants.AdminOnly...),
	)
	routeDetails.AcademicsAdminRoutes(admin, db)
	routeDetails.ExamsAdminRoutes(admin, db)
	routeDetails.UsersAdminRoutes(admin, db)

	log.Println("[INFO] Setting up INVIGILATOR group...")
	inv := app.Group("/api/i",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRoles(constants.AllRoles...),
	)
	routeDetails.AcademicsInvigilatorRoutes(inv, db)
	routeDetails.ExamsInvigilatorRoutes(inv, db)

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthJWT())
	routeDetails.UsersSelfRoutes(user, db)
}
