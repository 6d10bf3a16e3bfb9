package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"inggrisku_backend/internals/features/payments/transactions/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var (
	SnapClient snap.Client
	CoreClient coreapi.Client
)

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

/* =========================================================
   Generate Snap Token (checkout di client)
========================================================= */

func GenerateSnapToken(t model.PaymentTransaction, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  t.PaymentTransactionReference,
			GrossAmt: int64(t.PaymentTransactionAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       t.PaymentTransactionReference,
				Price:    int64(t.PaymentTransactionAmountIDR),
				Qty:      1,
				Name:     itemName(t.PaymentTransactionPurpose),
				Category: "english-test",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func itemName(purpose string) string {
	switch purpose {
	case model.TransactionPurposeReattempt:
		return "Tes ulang InggrisKu"
	case model.TransactionPurposeCertificate:
		return "Sertifikat InggrisKu"
	default:
		return "InggrisKu"
	}
}

/* =========================================================
   Verify by reference (Core API)
========================================================= */

// CheckByReference menanyakan status transaksi ke Midtrans berdasar OrderID.
func CheckByReference(reference string) (*coreapi.TransactionStatusResponse, error) {
	resp, err := CoreClient.CheckTransaction(reference)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
