package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "inggrisku_backend/internals/features/users/auth/controller"
	"inggrisku_backend/internals/middlewares"
	authMiddleware "inggrisku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// profil sendiri (butuh token)
	app.Get("/api/u/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
