// 📁 controller/payment_transaction_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inggrisku_backend/internals/configs"
	"inggrisku_backend/internals/features/payments/transactions/dto"
	"inggrisku_backend/internals/features/payments/transactions/model"
	paymentService "inggrisku_backend/internals/features/payments/transactions/service"
	userModel "inggrisku_backend/internals/features/users/auth/model"
	helper "inggrisku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentTransactionController struct {
	DB *gorm.DB
}

func NewPaymentTransactionController(db *gorm.DB) *PaymentTransactionController {
	return &PaymentTransactionController{DB: db}
}

// 🟢 PAYMENT CONFIG (public): client key hanya dikirim kalau prefix-nya dikenali.
// Client key tidak rahasia, tapi key salah = fitur pembayaran mati dengan jelas.
func (ctrl *PaymentTransactionController) PaymentConfig(c *fiber.Ctx) error {
	if !configs.PaymentClientKeyRecognized() {
		return helper.JsonOK(c, "", dto.PaymentConfigResponse{Enabled: false})
	}
	return helper.JsonOK(c, "", dto.PaymentConfigResponse{
		Enabled:   true,
		ClientKey: configs.MidtransClientKey,
	})
}

// 🟢 INITIATE: buat baris ledger pending + snap token
func (ctrl *PaymentTransactionController) InitiatePayment(c *fiber.Ctx) error {
	if !configs.PaymentClientKeyRecognized() || configs.MidtransServerKey == "" {
		// ConfigurationError: aksi berbayar dimatikan, bukan crash
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Fitur pembayaran sedang tidak tersedia")
	}

	var body dto.InitiatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	userID := helper.GetUserUUID(c)

	// nama + email untuk CustomerDetails Midtrans
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	tx, err := paymentService.InitiatePayment(ctrl.DB, userID, body.AmountIDR, body.Purpose, user.UserName, user.Email)
	if err != nil {
		if errors.Is(err, paymentService.ErrGatewayUnavailable) {
			return helper.JsonError(c, fiber.StatusBadGateway, "Gateway pembayaran tidak bisa dihubungi. Coba lagi nanti.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}

	resp := dto.InitiatePaymentResponse{
		Reference: tx.PaymentTransactionReference,
		AmountIDR: tx.PaymentTransactionAmountIDR,
		Purpose:   tx.PaymentTransactionPurpose,
		Status:    tx.PaymentTransactionStatus,
	}
	if tx.PaymentTransactionSnapToken != nil {
		resp.SnapToken = *tx.PaymentTransactionSnapToken
	}
	return helper.JsonCreated(c, "Pembayaran dibuat. Silakan lanjutkan ke checkout.", resp)
}

// 🟢 RECONCILE: verifikasi reference ke gateway & update ledger.
// Scoped ke pemilik SEBELUM menyentuh ledger: reference milik user lain
// dijawab 404 persis seperti reference yang tidak ada.
func (ctrl *PaymentTransactionController) ReconcilePayment(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Params("reference"))
	if reference == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "reference wajib diisi")
	}

	tx, err := paymentService.ReconcileForUser(ctrl.DB, helper.GetUserUUID(c), reference)
	if err != nil {
		switch {
		case errors.Is(err, paymentService.ErrUnknownReference):
			return helper.JsonError(c, fiber.StatusNotFound, "Reference tidak dikenal")
		case errors.Is(err, paymentService.ErrMissingServerKey):
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Fitur pembayaran sedang tidak tersedia")
		case errors.Is(err, paymentService.ErrGatewayUnavailable):
			return helper.JsonError(c, fiber.StatusBadGateway, "Gateway pembayaran tidak bisa dihubungi. Coba lagi nanti.")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reconcile pembayaran")
		}
	}

	return helper.JsonUpdated(c, "Status pembayaran diperbarui", dto.ReconcileResponse{
		Reference: tx.PaymentTransactionReference,
		Status:    tx.PaymentTransactionStatus,
		AmountIDR: tx.PaymentTransactionAmountIDR,
	})
}

// 🔔 NOTIFICATION (public webhook): gateway melapor async di reference yang sama.
// DB diambil dari Locals (dipasang DBMiddleware di route), bukan dari struct —
// endpoint ini tidak lewat group private.
func (ctrl *PaymentTransactionController) HandleGatewayNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	orderID, _ := body["order_id"].(string)
	if orderID == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	db, ok := c.Locals("db").(*gorm.DB)
	if !ok {
		log.Println("[ERROR] notification: db tidak ada di locals")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if _, err := paymentService.Reconcile(db, orderID); err != nil {
		if errors.Is(err, paymentService.ErrUnknownReference) {
			// bukan reference kita, jangan minta gateway retry terus
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Println("[ERROR] notification reconcile:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// 🟢 LIST: transaksi milik pemanggil (paginated, terbaru dulu)
func (ctrl *PaymentTransactionController) ListMyTransactions(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&model.PaymentTransaction{}).
		Where("payment_transaction_user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi")
	}

	var txs []model.PaymentTransaction
	if err := base.
		Order("payment_transaction_created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&txs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi")
	}

	return helper.JsonList(c, "", txs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GATE: boleh mulai tes ulang? (predicate untuk UI; keputusan final di attempt start)
func (ctrl *PaymentTransactionController) ReattemptGate(c *fiber.Ctx) error {
	ok, err := paymentService.HasUnconsumedVerifiedReattempt(ctrl.DB, helper.GetUserUUID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek status pembayaran")
	}
	return helper.JsonOK(c, "", fiber.Map{"can_reattempt": ok})
}

func validationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], field+" tidak valid ("+fe.Tag()+")")
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}
