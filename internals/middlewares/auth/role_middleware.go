package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// hasRole membaca locals roles (hasil hydrate AuthJWT) dan cek keanggotaan
func hasRole(c *fiber.Ctx, want ...string) bool {
	v := c.Locals(LocRoles)
	if v == nil {
		return false
	}

	var roles []string
	switch t := v.(type) {
	case []string:
		roles = t
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				roles = append(roles, s)
			}
		}
	case string:
		roles = strings.Split(t, ",")
	}

	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		for _, w := range want {
			if r == w {
				return true
			}
		}
	}
	return false
}

// OnlyAdmin: group /api/a
func OnlyAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !hasRole(c, constants.RoleAdmin, constants.RoleOwner) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// OnlyTeacherOrAdmin: fitur yang boleh diakses guru
func OnlyTeacherOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !hasRole(c, constants.RoleTeacher, constants.RoleAdmin, constants.RoleOwner) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

// ActorName mengambil atribusi "promoted by" dari token; fallback "System"
func ActorName(c *fiber.Ctx) string {
	if v := c.Locals(LocUserName); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	if v := c.Locals(LocUserID); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "System"
}
