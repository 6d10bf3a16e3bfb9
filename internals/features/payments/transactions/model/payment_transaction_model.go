package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM payment_transaction_status di PostgreSQL */

const (
	TransactionStatusPending  = "pending"  // baris dibuat, menunggu pembayaran
	TransactionStatusSuccess  = "success"  // laporan sementara dari client, belum diverifikasi
	TransactionStatusVerified = "verified" // gateway konfirmasi sukses (terminal)
	TransactionStatusFailed   = "failed"   // gateway konfirmasi gagal/ditolak (terminal)
)

const (
	TransactionPurposeReattempt   = "reattempt"
	TransactionPurposeCertificate = "certificate"
)

/* ===================== Model ===================== */

// PaymentTransaction = satu baris ledger per inisiasi pembayaran.
// Reference unik dan dipakai sebagai OrderID di Midtrans; satu-satunya jalur
// keluar dari 'pending' adalah reconcile (single atomic update by reference).
type PaymentTransaction struct {
	PaymentTransactionID uuid.UUID `gorm:"column:payment_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_transaction_id"`

	PaymentTransactionUserID    uuid.UUID `gorm:"column:payment_transaction_user_id;type:uuid;not null;index" json:"payment_transaction_user_id"`
	PaymentTransactionReference string    `gorm:"column:payment_transaction_reference;size:64;unique;not null" json:"payment_transaction_reference"`

	PaymentTransactionAmountIDR int    `gorm:"column:payment_transaction_amount_idr;not null;check:payment_transaction_amount_idr >= 0" json:"payment_transaction_amount_idr"`
	PaymentTransactionPurpose   string `gorm:"column:payment_transaction_purpose;size:32;not null" json:"payment_transaction_purpose"`
	PaymentTransactionStatus    string `gorm:"column:payment_transaction_status;type:payment_transaction_status;not null;default:'pending'" json:"payment_transaction_status"`

	// Snap token untuk checkout di client (opsional, tidak otoritatif)
	PaymentTransactionSnapToken *string `gorm:"column:payment_transaction_snap_token" json:"payment_transaction_snap_token,omitempty"`

	// Respons mentah gateway terakhir, disimpan tiap reconcile (audit)
	PaymentTransactionGatewayResponse datatypes.JSONMap `gorm:"column:payment_transaction_gateway_response;type:jsonb" json:"payment_transaction_gateway_response,omitempty"`

	// Dipakai untuk reattempt: diisi saat attempt start mengonsumsi pembayaran ini
	PaymentTransactionConsumedAt *time.Time `gorm:"column:payment_transaction_consumed_at" json:"payment_transaction_consumed_at,omitempty"`
	PaymentTransactionVerifiedAt *time.Time `gorm:"column:payment_transaction_verified_at" json:"payment_transaction_verified_at,omitempty"`

	CreatedAt time.Time `gorm:"column:payment_transaction_created_at;autoCreateTime" json:"payment_transaction_created_at"`
	UpdatedAt time.Time `gorm:"column:payment_transaction_updated_at;autoUpdateTime" json:"payment_transaction_updated_at"`
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }

/* ===================== Helpers ===================== */

// IsTerminal: verified/failed tidak pernah ditransisikan lagi oleh reconcile.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.PaymentTransactionStatus == TransactionStatusVerified ||
		t.PaymentTransactionStatus == TransactionStatusFailed
}
