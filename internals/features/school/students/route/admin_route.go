// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := studentController.NewStudentController(db, v)

	students := admin.Group("/students")
	students.Get("/", ctl.GetStudents)
	students.Get("/next-roll-number", ctl.PreviewRollNumber)
	students.Get("/:id", ctl.GetStudentByID)
	students.Post("/", ctl.CreateStudent)
	students.Patch("/:id", ctl.UpdateStudent)
	students.Delete("/:id", ctl.DeleteStudent)
}
