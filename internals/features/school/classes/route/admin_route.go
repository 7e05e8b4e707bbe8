// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classController.NewClassController(db, v)

	classes := admin.Group("/classes")
	classes.Get("/", ctl.GetClasses)
	classes.Get("/:id", ctl.GetClassByID)
	classes.Get("/:id/next", ctl.GetNextClass)
	classes.Post("/", ctl.CreateClass)
	classes.Patch("/:id", ctl.UpdateClass)
	classes.Delete("/:id", ctl.DeleteClass)

	sections := admin.Group("/sections")
	sections.Get("/", ctl.GetSections)
	sections.Post("/", ctl.CreateSection)
	sections.Delete("/:id", ctl.DeleteSection)
}

// ClassUserRoutes: mirror baca-saja untuk user biasa.
func ClassUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classController.NewClassController(db, v)

	classes := user.Group("/classes")
	classes.Get("/", ctl.GetClasses)
	classes.Get("/:id", ctl.GetClassByID)
}
