package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "inggrisku_backend/internals/features/certificates/certificate/controller"
)

func CertificateUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)

	r.Get("/attempts/:id/certificate", ctrl.GetCertificate)
}
