package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "inggrisku_backend/internals/features/payments/transactions/controller"
	"inggrisku_backend/internals/middlewares"
)

func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentTransactionController(db)

	r.Get("/payment-config", ctrl.PaymentConfig)

	// 🔔 Webhook gateway (server-to-server, tanpa auth user).
	// Handler ambil DB dari Locals, jadi DBMiddleware dipasang per-route.
	r.Post("/payments/notification", middlewares.DBMiddleware(db), ctrl.HandleGatewayNotification)
}

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentTransactionController(db)

	payments := r.Group("/payments")
	payments.Post("/", ctrl.InitiatePayment)
	payments.Get("/", ctrl.ListMyTransactions)
	payments.Get("/gate", ctrl.ReattemptGate)
	payments.Post("/:reference/reconcile", middlewares.ReconcileRateLimiter(), ctrl.ReconcilePayment)
}
