// file: internals/route/details/school_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumniRoute "sekolahku_backend/internals/features/school/alumni/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	examRoute "sekolahku_backend/internals/features/school/exams/route"
	promotionRoute "sekolahku_backend/internals/features/school/promotions/route"
	sessionRoute "sekolahku_backend/internals/features/school/sessions/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// SchoolAdminRoutes: seluruh surface tulis berada di balik role admin;
// data ujian boleh diisi guru.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	adminOnly := admin.Group("", middleware.OnlyAdmin("manajemen sekolah"))
	studentRoute.StudentAdminRoutes(adminOnly, db, v)
	classRoute.ClassAdminRoutes(adminOnly, db, v)
	sessionRoute.SessionAdminRoutes(adminOnly, db, v)
	promotionRoute.PromotionAdminRoutes(adminOnly, db, v)
	alumniRoute.AlumniAdminRoutes(adminOnly, db, v)

	teacherOrAdmin := admin.Group("", middleware.OnlyTeacherOrAdmin("hasil ujian"))
	examRoute.ExamAdminRoutes(teacherOrAdmin, db, v)
}

// SchoolUserRoutes: mirror baca-saja.
func SchoolUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	classRoute.ClassUserRoutes(user, db, v)
	sessionRoute.SessionUserRoutes(user, db, v)
}
