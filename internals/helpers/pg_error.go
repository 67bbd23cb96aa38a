// file: internals/helpers/pg_error.go
package helper

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr lets us read the SQLSTATE without importing the driver directly.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey reports a Postgres unique violation (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// MapPGError turns a storage error into (status, message).
// 23505 unique_violation, 23503 foreign_key_violation, 23P01 exclusion_violation.
func MapPGError(err error, conflictMsg string) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fiber.StatusServiceUnavailable, "Storage timed out, please retry"
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505", "23P01":
			if conflictMsg == "" {
				conflictMsg = "Duplicate data (unique violation)"
			}
			return fiber.StatusConflict, conflictMsg
		case "23503":
			return fiber.StatusBadRequest, "Reference not found (FK violation)"
		case "40001":
			return fiber.StatusServiceUnavailable, "Write conflict, please retry"
		}
	}
	if IsDuplicateKey(err) {
		if conflictMsg == "" {
			conflictMsg = "Duplicate data (unique violation)"
		}
		return fiber.StatusConflict, conflictMsg
	}
	return fiber.StatusInternalServerError, err.Error()
}

// WritePGError writes the mapped storage error response.
func WritePGError(c *fiber.Ctx, err error, conflictMsg string) error {
	code, msg := MapPGError(err, conflictMsg)
	return JsonError(c, code, msg)
}
