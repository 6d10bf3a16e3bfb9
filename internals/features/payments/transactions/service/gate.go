// internals/features/payments/transactions/service/gate.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"inggrisku_backend/internals/configs"
	"inggrisku_backend/internals/features/payments/transactions/model"
)

/* ===================== Typed errors ===================== */

var (
	// ErrUnknownReference: reference tidak ada di ledger, tidak ada mutasi apa pun.
	ErrUnknownReference = errors.New("payment reference tidak dikenal")

	// ErrGatewayUnavailable: gateway tidak bisa dihubungi / balas non-sukses.
	// Transaksi TETAP pending, aman untuk retry.
	ErrGatewayUnavailable = errors.New("payment gateway tidak bisa dihubungi")

	// ErrMissingServerKey: kredensial server belum diset, fail fast tanpa call network.
	ErrMissingServerKey = errors.New("MIDTRANS_SERVER_KEY belum diset")

	// ErrNoVerifiedReattempt: tidak ada pembayaran reattempt verified yang belum terpakai.
	ErrNoVerifiedReattempt = errors.New("tidak ada pembayaran tes ulang yang terverifikasi")
)

/* ===================== Reference ===================== */

// NewPaymentReference membuat reference unik per inisiasi.
// Unixnano + 4 byte random: dua inisiasi di nanodetik sama tetap tidak tabrakan.
func NewPaymentReference() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("RTK-%d-%s", time.Now().UnixNano(), hex.EncodeToString(suffix))
}

/* ===================== Status mapping ===================== */

// MapGatewayStatus memetakan status Midtrans ke status ledger.
// settlement & capture(accept) = dibayar → verified.
// pending tetap pending (pembayar lambat ≠ gagal).
// Status terminal lain (deny/cancel/expire/failure) → failed.
func MapGatewayStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "settlement":
		return model.TransactionStatusVerified
	case "capture":
		if fraudStatus == "accept" {
			return model.TransactionStatusVerified
		}
		return model.TransactionStatusFailed
	case "pending", "authorize":
		return model.TransactionStatusPending
	default:
		return model.TransactionStatusFailed
	}
}

/* ===================== Initiate ===================== */

// InitiatePayment membuat baris ledger status pending, LALU minta snap token.
// Urutan penting: baris harus ada sebelum gateway flow dimulai supaya reconcile
// selalu menemukan baris untuk di-update.
func InitiatePayment(db *gorm.DB, userID uuid.UUID, amountIDR int, purpose, name, email string) (model.PaymentTransaction, error) {
	tx := model.PaymentTransaction{
		PaymentTransactionUserID:    userID,
		PaymentTransactionReference: NewPaymentReference(),
		PaymentTransactionAmountIDR: amountIDR,
		PaymentTransactionPurpose:   purpose,
		PaymentTransactionStatus:    model.TransactionStatusPending,
	}

	if err := db.Create(&tx).Error; err != nil {
		return model.PaymentTransaction{}, err
	}

	token, err := GenerateSnapToken(tx, name, email)
	if err != nil {
		// Baris pending dibiarkan: client bisa inisiasi ulang, reconcile tidak
		// akan pernah memverifikasi reference yang tak dikenal gateway.
		log.Println("[ERROR] snap token:", err)
		return tx, ErrGatewayUnavailable
	}

	tx.PaymentTransactionSnapToken = &token
	if err := db.Model(&model.PaymentTransaction{}).
		Where("payment_transaction_reference = ?", tx.PaymentTransactionReference).
		Update("payment_transaction_snap_token", token).Error; err != nil {
		return model.PaymentTransaction{}, err
	}

	return tx, nil
}

/* ===================== Reconcile ===================== */

// gatewayCheck dipisah sebagai variabel supaya bisa distub di test
// tanpa menyentuh client Midtrans global.
var gatewayCheck = CheckByReference

// Reconcile = satu-satunya jalur transisi keluar dari pending.
// Idempoten: dipanggil ulang pada status terminal hanya re-konfirmasi +
// menyimpan respons gateway terbaru untuk audit. Update-nya satu UPDATE
// atomik keyed by reference, jadi dua reconcile nyaris bersamaan tidak bisa
// meninggalkan baris setengah jadi.
func Reconcile(db *gorm.DB, reference string) (model.PaymentTransaction, error) {
	var tx model.PaymentTransaction
	if err := db.Where("payment_transaction_reference = ?", reference).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PaymentTransaction{}, ErrUnknownReference
		}
		return model.PaymentTransaction{}, err
	}

	// fail fast sebelum network call
	if configs.MidtransServerKey == "" {
		return model.PaymentTransaction{}, ErrMissingServerKey
	}

	resp, err := gatewayCheck(reference)
	if err != nil {
		// infra/network failure ≠ pembayaran ditolak: biarkan pending
		log.Println("[ERROR] check transaction:", err)
		return model.PaymentTransaction{}, ErrGatewayUnavailable
	}

	newStatus := MapGatewayStatus(resp.TransactionStatus, resp.FraudStatus)
	raw := datatypes.JSONMap{
		"order_id":           resp.OrderID,
		"transaction_id":     resp.TransactionID,
		"transaction_status": resp.TransactionStatus,
		"fraud_status":       resp.FraudStatus,
		"gross_amount":       resp.GrossAmount,
		"payment_type":       resp.PaymentType,
		"transaction_time":   resp.TransactionTime,
		"status_code":        resp.StatusCode,
		"status_message":     resp.StatusMessage,
	}

	updates := map[string]interface{}{
		"payment_transaction_gateway_response": raw,
	}
	// Baris yang sudah terminal tidak pernah ditransisikan lagi: reconcile
	// ulang hanya re-konfirmasi + menyimpan respons gateway terbaru.
	if newStatus != model.TransactionStatusPending && !tx.IsTerminal() {
		updates["payment_transaction_status"] = newStatus
		if newStatus == model.TransactionStatusVerified {
			updates["payment_transaction_verified_at"] = gorm.Expr("COALESCE(payment_transaction_verified_at, now())")
		}
	}

	if err := db.Model(&model.PaymentTransaction{}).
		Where("payment_transaction_reference = ?", reference).
		Updates(updates).Error; err != nil {
		return model.PaymentTransaction{}, err
	}

	// baca ulang hasil akhir
	if err := db.Where("payment_transaction_reference = ?", reference).First(&tx).Error; err != nil {
		return model.PaymentTransaction{}, err
	}
	return tx, nil
}

// ReconcileForUser = Reconcile yang di-scope ke pemilik. Reference milik
// user lain diperlakukan sama dengan reference yang tidak ada (tidak bocor
// keberadaannya) dan ledger tidak tersentuh sama sekali.
func ReconcileForUser(db *gorm.DB, userID uuid.UUID, reference string) (model.PaymentTransaction, error) {
	var tx model.PaymentTransaction
	if err := db.
		Where("payment_transaction_reference = ? AND payment_transaction_user_id = ?", reference, userID).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PaymentTransaction{}, ErrUnknownReference
		}
		return model.PaymentTransaction{}, err
	}
	return Reconcile(db, reference)
}

/* ===================== Reattempt gate ===================== */

// HasUnconsumedVerifiedReattempt: predicate murni untuk UI (boleh mulai tes ulang?).
// Keputusan final tetap di ConsumeVerifiedReattempt saat attempt start.
func HasUnconsumedVerifiedReattempt(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.PaymentTransaction{}).
		Where("payment_transaction_user_id = ?", userID).
		Where("payment_transaction_purpose = ?", model.TransactionPurposeReattempt).
		Where("payment_transaction_status = ?", model.TransactionStatusVerified).
		Where("payment_transaction_consumed_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// ConsumeVerifiedReattempt menandai SATU pembayaran reattempt verified sebagai
// terpakai, atomik di sisi server (bukan flag client). SKIP LOCKED supaya dua
// attempt start bersamaan tidak mengonsumsi baris yang sama.
func ConsumeVerifiedReattempt(db *gorm.DB, userID uuid.UUID) (model.PaymentTransaction, error) {
	var tx model.PaymentTransaction
	err := db.Raw(`
		UPDATE payment_transactions
		   SET payment_transaction_consumed_at = now(),
		       payment_transaction_updated_at  = now()
		 WHERE payment_transaction_id = (
		       SELECT payment_transaction_id
		         FROM payment_transactions
		        WHERE payment_transaction_user_id = ?
		          AND payment_transaction_purpose = ?
		          AND payment_transaction_status  = ?
		          AND payment_transaction_consumed_at IS NULL
		        ORDER BY payment_transaction_created_at
		        LIMIT 1
		        FOR UPDATE SKIP LOCKED)
		 RETURNING *`,
		userID, model.TransactionPurposeReattempt, model.TransactionStatusVerified,
	).Scan(&tx).Error
	if err != nil {
		return model.PaymentTransaction{}, err
	}
	if tx.PaymentTransactionID == uuid.Nil {
		return model.PaymentTransaction{}, ErrNoVerifiedReattempt
	}
	return tx, nil
}
