// file: internals/features/school/alumni/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumniController "sekolahku_backend/internals/features/school/alumni/controller"
)

func AlumniAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := alumniController.NewAlumniController(db, v)

	alumni := admin.Group("/alumni")
	alumni.Get("/", ctl.GetAlumni)
	alumni.Get("/:id", ctl.GetAlumniByID)
	alumni.Patch("/:id", ctl.UpdateAlumni)
}
