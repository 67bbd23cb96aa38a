// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "examtrack_backend/internals/helpers"
	helperAuth "examtrack_backend/internals/helpers/auth"
)

// RequireRoles rejects principals whose role claim is not in the allow list.
// The response stays generic so callers cannot probe resources.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
}
