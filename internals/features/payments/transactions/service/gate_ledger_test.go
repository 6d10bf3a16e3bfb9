package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inggrisku_backend/internals/configs"
	"inggrisku_backend/internals/features/payments/transactions/model"
)

/* ===================== Test harness ===================== */

func newLedgerMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func ledgerRows(id, userID uuid.UUID, reference, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_transaction_id",
		"payment_transaction_user_id",
		"payment_transaction_reference",
		"payment_transaction_amount_idr",
		"payment_transaction_purpose",
		"payment_transaction_status",
	}).AddRow(id.String(), userID.String(), reference, 150000, model.TransactionPurposeReattempt, status)
}

func emptyLedgerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"payment_transaction_id"})
}

func stubGatewayCheck(t *testing.T, fn func(reference string) (*coreapi.TransactionStatusResponse, error)) {
	t.Helper()
	orig := gatewayCheck
	gatewayCheck = fn
	t.Cleanup(func() { gatewayCheck = orig })
}

func stubServerKey(t *testing.T) {
	t.Helper()
	orig := configs.MidtransServerKey
	configs.MidtransServerKey = "SB-Mid-server-xxxxxxxx"
	t.Cleanup(func() { configs.MidtransServerKey = orig })
}

func settlementResponse(reference string) *coreapi.TransactionStatusResponse {
	return &coreapi.TransactionStatusResponse{
		OrderID:           reference,
		TransactionID:     "mid-trx-001",
		TransactionStatus: "settlement",
		FraudStatus:       "accept",
		GrossAmount:       "150000.00",
		PaymentType:       "qris",
		StatusCode:        "200",
	}
}

const selectByReference = `SELECT \* FROM "payment_transactions" WHERE payment_transaction_reference`

/* ===================== Reconcile ===================== */

// Reference yang tidak ada di ledger: ErrUnknownReference, gateway tidak
// pernah dihubungi, dan tidak ada satu pun statement mutasi yang jalan.
func TestReconcileUnknownReferenceNeverMutates(t *testing.T) {
	db, mock := newLedgerMock(t)
	stubServerKey(t)
	stubGatewayCheck(t, func(string) (*coreapi.TransactionStatusResponse, error) {
		t.Fatal("gateway tidak boleh dipanggil untuk reference tak dikenal")
		return nil, nil
	})

	mock.ExpectQuery(selectByReference).WillReturnRows(emptyLedgerRows())

	_, err := Reconcile(db, "RTK-0-deadbeef")
	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reconcile dua kali pada gateway yang melapor settlement: baris berakhir
// verified di kedua panggilan. Panggilan kedua hanya re-konfirmasi + simpan
// respons gateway terbaru, tidak ada transisi status lagi.
func TestReconcileVerifiedIsRepeatable(t *testing.T) {
	db, mock := newLedgerMock(t)
	stubServerKey(t)

	ref := "RTK-1700000000000000000-a1b2c3d4"
	id := uuid.New()
	userID := uuid.New()

	stubGatewayCheck(t, func(reference string) (*coreapi.TransactionStatusResponse, error) {
		return settlementResponse(reference), nil
	})

	// reconcile #1: pending → verified
	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(id, userID, ref, model.TransactionStatusPending))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(id, userID, ref, model.TransactionStatusVerified))

	tx, err := Reconcile(db, ref)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionStatusVerified, tx.PaymentTransactionStatus)

	// reconcile #2: baris sudah terminal, tetap verified
	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(id, userID, ref, model.TransactionStatusVerified))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(id, userID, ref, model.TransactionStatusVerified))

	tx, err = Reconcile(db, ref)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionStatusVerified, tx.PaymentTransactionStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Gateway tidak bisa dihubungi: ErrGatewayUnavailable dan baris dibiarkan
// apa adanya (pending tetap pending, aman untuk retry).
func TestReconcileGatewayDownLeavesRowUntouched(t *testing.T) {
	db, mock := newLedgerMock(t)
	stubServerKey(t)

	ref := "RTK-1700000000000000001-b2c3d4e5"
	stubGatewayCheck(t, func(string) (*coreapi.TransactionStatusResponse, error) {
		return nil, errors.New("connection refused")
	})

	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(uuid.New(), uuid.New(), ref, model.TransactionStatusPending))

	_, err := Reconcile(db, ref)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Server key kosong: fail fast sebelum network call, tanpa mutasi.
func TestReconcileMissingServerKey(t *testing.T) {
	db, mock := newLedgerMock(t)

	origKey := configs.MidtransServerKey
	configs.MidtransServerKey = ""
	t.Cleanup(func() { configs.MidtransServerKey = origKey })

	stubGatewayCheck(t, func(string) (*coreapi.TransactionStatusResponse, error) {
		t.Fatal("gateway tidak boleh dipanggil tanpa server key")
		return nil, nil
	})

	ref := "RTK-1700000000000000002-c3d4e5f6"
	mock.ExpectQuery(selectByReference).
		WillReturnRows(ledgerRows(uuid.New(), uuid.New(), ref, model.TransactionStatusPending))

	_, err := Reconcile(db, ref)
	assert.ErrorIs(t, err, ErrMissingServerKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ===================== ReconcileForUser ===================== */

// Reference milik user lain dijawab ErrUnknownReference dari lookup yang
// di-scope ke pemilik: tidak ada reconcile, tidak ada mutasi, keberadaan
// reference tidak bocor.
func TestReconcileForUserForeignReferenceIsUnknown(t *testing.T) {
	db, mock := newLedgerMock(t)
	stubServerKey(t)
	stubGatewayCheck(t, func(string) (*coreapi.TransactionStatusResponse, error) {
		t.Fatal("gateway tidak boleh dipanggil untuk reference user lain")
		return nil, nil
	})

	mock.ExpectQuery(`SELECT \* FROM "payment_transactions" WHERE payment_transaction_reference = \$1 AND payment_transaction_user_id = \$2`).
		WillReturnRows(emptyLedgerRows())

	_, err := ReconcileForUser(db, uuid.New(), "RTK-1700000000000000003-d4e5f6a7")
	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ===================== ConsumeVerifiedReattempt ===================== */

func TestConsumeVerifiedReattemptNoneAvailable(t *testing.T) {
	db, mock := newLedgerMock(t)

	mock.ExpectQuery(`UPDATE payment_transactions`).
		WillReturnRows(emptyLedgerRows())

	_, err := ConsumeVerifiedReattempt(db, uuid.New())
	assert.ErrorIs(t, err, ErrNoVerifiedReattempt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeVerifiedReattemptReturnsMarkedRow(t *testing.T) {
	db, mock := newLedgerMock(t)

	userID := uuid.New()
	ref := "RTK-1700000000000000004-e5f6a7b8"
	mock.ExpectQuery(`UPDATE payment_transactions`).
		WillReturnRows(ledgerRows(uuid.New(), userID, ref, model.TransactionStatusVerified))

	tx, err := ConsumeVerifiedReattempt(db, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, tx.PaymentTransactionUserID)
	assert.Equal(t, ref, tx.PaymentTransactionReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}
