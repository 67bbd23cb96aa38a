// internals/features/users/profiles/controller/profile_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"examtrack_backend/internals/constants"
	helper "examtrack_backend/internals/helpers"
	"examtrack_backend/internals/helpers/auth"

	"examtrack_backend/internals/features/users/profiles/dto"
	"examtrack_backend/internals/features/users/profiles/model"
)

type ProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* =========================================================
   ADMIN
   ========================================================= */

// POST /api/a/profiles
// Registers (or refreshes) the identity provider's subject. Upsert keyed on
// profile_id so re-registering after a role change just works.
func (ctl *ProfileController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid profile payload", helper.BuildFieldErrors(err))
	}

	profile, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, err.Error(), nil)
	}

	assignments := []string{"profile_full_name", "profile_email", "profile_role"}
	if req.OverridePin != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.OverridePin), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash PIN")
		}
		h := string(hash)
		profile.ProfileOverridePinHash = &h
		assignments = append(assignments, "profile_override_pin_hash")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns(assignments),
		}).
		Create(&profile).Error; err != nil {
		return helper.WritePGError(c, err, "Email already registered to another profile")
	}
	return helper.JsonCreated(c, "Profile saved", dto.NewProfileResponse(&profile))
}

// GET /api/a/profiles?role=&search=&page=&per_page=
func (ctl *ProfileController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ProfileModel{})
	switch role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role {
	case "":
	case constants.RoleAdmin, constants.RoleInvigilator:
		q = q.Where("profile_role = ?", role)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("profile_full_name ILIKE ? OR profile_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	var rows []model.ProfileModel
	if err := q.Order("profile_full_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonList(c, "Profiles fetched", dto.NewProfileResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   SELF
   ========================================================= */

// GET /api/u/me
func (ctl *ProfileController) Me(c *fiber.Ctx) error {
	profileID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile model.ProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&profile, "profile_id = ?", profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Profile fetched", dto.NewProfileResponse(&profile))
}
