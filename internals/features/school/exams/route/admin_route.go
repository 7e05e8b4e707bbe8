// file: internals/features/school/exams/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "sekolahku_backend/internals/features/school/exams/controller"
)

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := examController.NewExamResultController(db, v)

	exams := admin.Group("/exam-results")
	exams.Get("/", ctl.GetExamResults)
	exams.Get("/:id", ctl.GetExamResultByID)
	exams.Post("/", ctl.CreateExamResult)
	exams.Patch("/:id", ctl.UpdateExamResult)
	exams.Delete("/:id", ctl.DeleteExamResult)
}
