package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{TransactionStatusPending, false},
		{TransactionStatusSuccess, false},
		{TransactionStatusVerified, true},
		{TransactionStatusFailed, true},
	}
	for _, tc := range cases {
		tx := PaymentTransaction{PaymentTransactionStatus: tc.status}
		assert.Equal(t, tc.want, tx.IsTerminal(), tc.status)
	}
}
