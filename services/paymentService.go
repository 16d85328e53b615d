package services

import "github.com/kinmelhub/kinmel-api/models"

// methodNeedsEvidence maps each supported payment method to whether it
// requires upfront proof (transaction ref + screenshot) before the order
// can be accepted.
var methodNeedsEvidence = map[string]bool{
	models.PaymentMethodBankTransfer:   true,
	models.PaymentMethodCashOnDelivery: false,
}

func IsEvidenceBased(method string) bool {
	return methodNeedsEvidence[method]
}

// ValidatePayment checks the method-specific submission preconditions.
// Evidence-based methods fail closed: without both the transaction ref and
// the uploaded evidence reference, no order is created.
func ValidatePayment(method, transactionRef, evidenceURL string) error {
	needsEvidence, ok := methodNeedsEvidence[method]
	if !ok {
		return ErrUnknownPaymentMethod
	}
	if !needsEvidence {
		return nil
	}
	if transactionRef == "" {
		return ErrMissingTransactionRef
	}
	if evidenceURL == "" {
		return ErrMissingEvidence
	}
	return nil
}

// InitialPaymentStatus is the status a freshly submitted order starts in.
// Evidence-based payments are never auto-approved; an admin has to verify
// the uploaded proof.
func InitialPaymentStatus(method string) string {
	if IsEvidenceBased(method) {
		return models.PaymentStatusPendingVerification
	}
	return models.PaymentStatusPending
}
