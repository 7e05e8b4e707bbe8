// file: internals/features/school/promotions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	promotionController "sekolahku_backend/internals/features/school/promotions/controller"
	"sekolahku_backend/internals/middlewares"
)

// PromotionAdminRoutes: seluruh surface engine promosi (admin only).
func PromotionAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := promotionController.NewPromotionController(db, v)

	promotions := admin.Group("/promotions")
	promotions.Get("/options", ctl.GetOptions)
	promotions.Get("/students", ctl.GetStudentsForPromotion)
	promotions.Get("/can-promote", ctl.CanPromote)
	promotions.Get("/history", ctl.GetHistory)

	// Eksekusi batch dibatasi rate limiter khusus.
	promotions.Post("/process", middlewares.PromotionRateLimiter(), ctl.ProcessPromotion)
	promotions.Post("/promote-class", middlewares.PromotionRateLimiter(), ctl.PromoteClass)
}
