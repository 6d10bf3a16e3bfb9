package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"inggrisku_backend/internals/features/payments/transactions/model"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"settlement", "", model.TransactionStatusVerified},
		{"settlement", "accept", model.TransactionStatusVerified},
		{"capture", "accept", model.TransactionStatusVerified},
		{"capture", "challenge", model.TransactionStatusFailed},
		{"pending", "", model.TransactionStatusPending},
		{"authorize", "", model.TransactionStatusPending},
		{"deny", "", model.TransactionStatusFailed},
		{"cancel", "", model.TransactionStatusFailed},
		{"expire", "", model.TransactionStatusFailed},
		{"failure", "", model.TransactionStatusFailed},
	}
	for _, tc := range cases {
		got := MapGatewayStatus(tc.transactionStatus, tc.fraudStatus)
		assert.Equal(t, tc.want, got, "%s/%s", tc.transactionStatus, tc.fraudStatus)
	}
}

// Mapping harus deterministik: reconcile ulang dengan respons gateway yang
// sama tidak boleh berosilasi.
func TestMapGatewayStatusDeterministic(t *testing.T) {
	first := MapGatewayStatus("settlement", "accept")
	second := MapGatewayStatus("settlement", "accept")
	assert.Equal(t, first, second)
	assert.Equal(t, model.TransactionStatusVerified, second)
}

func TestNewPaymentReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		ref := NewPaymentReference()
		assert.True(t, strings.HasPrefix(ref, "RTK-"), "prefix: %s", ref)
		assert.False(t, seen[ref], "reference duplikat: %s", ref)
		seen[ref] = true
	}
}
