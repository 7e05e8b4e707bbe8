// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	routeDetails "sekolahku_backend/internals/route/details"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes: dua grup utama —
//   /api/a : admin/teacher (JWT + role check)
//   /api/u : user login biasa (JWT saja, baca-saja)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	admin := api.Group("/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.SchoolAdminRoutes(admin, db, v)

	user := api.Group("/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.SchoolUserRoutes(user, db, v)
}
