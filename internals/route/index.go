// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "inggrisku_backend/internals/middlewares/auth"
	routeDetails "inggrisku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public + rate limited) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PaymentPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Exam routes...")
	routeDetails.ExamUserRoutes(private, db)

	log.Println("[INFO] Mounting Certificate routes...")
	routeDetails.CertificateUserRoutes(private, db)

	log.Println("[INFO] Mounting Payment routes...")
	routeDetails.PaymentUserRoutes(private, db)
}
