// file: internals/features/school/sessions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "sekolahku_backend/internals/features/school/sessions/controller"
)

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := sessionController.NewSessionController(db, v)

	sessions := admin.Group("/sessions")
	sessions.Get("/", ctl.GetSessions)
	sessions.Get("/current", ctl.GetCurrentSession)
	sessions.Get("/:id", ctl.GetSessionByID)
	sessions.Post("/", ctl.CreateSession)
	sessions.Patch("/:id", ctl.UpdateSession)
	sessions.Post("/:id/activate", ctl.ActivateSession)
	sessions.Delete("/:id", ctl.DeleteSession)
}

func SessionUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := sessionController.NewSessionController(db, v)

	sessions := user.Group("/sessions")
	sessions.Get("/", ctl.GetSessions)
	sessions.Get("/current", ctl.GetCurrentSession)
}
