package services

import (
	"testing"

	"github.com/kinmelhub/kinmel-api/models"
	"github.com/stretchr/testify/assert"
)

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		transactionRef string
		evidenceURL    string
		wantErr        error
	}{
		{"cod needs nothing", models.PaymentMethodCashOnDelivery, "", "", nil},
		{"bank transfer complete", models.PaymentMethodBankTransfer, "TXN123", "https://bucket/img1.png", nil},
		{"bank transfer without ref", models.PaymentMethodBankTransfer, "", "https://bucket/img1.png", ErrMissingTransactionRef},
		{"bank transfer without evidence", models.PaymentMethodBankTransfer, "TXN123", "", ErrMissingEvidence},
		{"bank transfer with neither", models.PaymentMethodBankTransfer, "", "", ErrMissingTransactionRef},
		{"unknown method", "crypto", "", "", ErrUnknownPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(tt.method, tt.transactionRef, tt.evidenceURL)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInitialPaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPendingVerification, InitialPaymentStatus(models.PaymentMethodBankTransfer))
	assert.Equal(t, models.PaymentStatusPending, InitialPaymentStatus(models.PaymentMethodCashOnDelivery))
}

func TestIsEvidenceBased(t *testing.T) {
	assert.True(t, IsEvidenceBased(models.PaymentMethodBankTransfer))
	assert.False(t, IsEvidenceBased(models.PaymentMethodCashOnDelivery))
	assert.False(t, IsEvidenceBased("crypto"))
}
