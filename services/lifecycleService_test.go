package services

import (
	"testing"
	"time"

	"github.com/kinmelhub/kinmel-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithOrder(status, paymentStatus string) *fakeOrderStore {
	order := &models.Order{
		OrderNumber:   "ORD-TEST1234",
		Status:        status,
		PaymentStatus: paymentStatus,
	}
	order.ID = 1
	return &fakeOrderStore{orders: []*models.Order{order}, nextID: 1}
}

func TestCanTransitionHappyPath(t *testing.T) {
	steps := []string{
		models.OrderStatusProcessing,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
	}
	for i := 0; i < len(steps)-1; i++ {
		assert.True(t, CanTransition(steps[i], steps[i+1]), "%s -> %s", steps[i], steps[i+1])
	}
}

func TestCanTransitionRejectsSkipsAndReversals(t *testing.T) {
	assert.False(t, CanTransition(models.OrderStatusProcessing, models.OrderStatusDelivered))
	assert.False(t, CanTransition(models.OrderStatusShipped, models.OrderStatusConfirmed))
	assert.False(t, CanTransition(models.OrderStatusDelivered, models.OrderStatusProcessing))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusProcessing, models.OrderStatusCancelled))
	assert.True(t, CanTransition(models.OrderStatusOutForDelivery, models.OrderStatusCancelled))
	assert.False(t, CanTransition(models.OrderStatusDelivered, models.OrderStatusCancelled))
	assert.False(t, CanTransition(models.OrderStatusCancelled, models.OrderStatusCancelled))
}

func TestUpdateOrderStatusAdvances(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPending)

	order, err := UpdateOrderStatus(store, 1, TransitionRequest{Status: models.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	// payment axis untouched
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)

	require.Len(t, store.history, 1)
	assert.Equal(t, models.OrderStatusConfirmed, store.history[0].Status)
}

func TestUpdateOrderStatusInvalidJump(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPending)

	_, err := UpdateOrderStatus(store, 1, TransitionRequest{Status: models.OrderStatusDelivered})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, store.history)
	assert.Equal(t, models.OrderStatusProcessing, store.orders[0].Status)
}

func TestUpdateOrderStatusShippedSetsTracking(t *testing.T) {
	store := storeWithOrder(models.OrderStatusConfirmed, models.PaymentStatusPaid)
	eta := time.Now().Add(72 * time.Hour)

	order, err := UpdateOrderStatus(store, 1, TransitionRequest{
		Status:            models.OrderStatusShipped,
		TrackingNumber:    "NPX-556677",
		EstimatedDelivery: &eta,
	})
	require.NoError(t, err)
	assert.Equal(t, "NPX-556677", order.TrackingNumber)
	require.NotNil(t, order.EstimatedDelivery)
	assert.Equal(t, "NPX-556677", store.orders[0].TrackingNumber)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	store := &fakeOrderStore{}
	_, err := UpdateOrderStatus(store, 42, TransitionRequest{Status: models.OrderStatusConfirmed})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestApprovePayment(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPendingVerification)

	order, err := ApprovePayment(store, 1)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	require.Len(t, store.history, 1)
	assert.Equal(t, models.OrderStatusConfirmed, store.history[0].Status)
	assert.Equal(t, "Payment verified and approved", store.history[0].Notes)
}

func TestApprovePaymentAlreadyPaid(t *testing.T) {
	store := storeWithOrder(models.OrderStatusConfirmed, models.PaymentStatusPaid)

	_, err := ApprovePayment(store, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, store.history)
}

func TestApprovePaymentNotEvidenceBased(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPending)

	_, err := ApprovePayment(store, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, store.history)
}

// An evidence-based order cancelled before its payment was resolved keeps
// payment_status = pending_verification; approving it must not pull it out
// of the terminal cancelled state.
func TestApprovePaymentCancelledOrderStaysCancelled(t *testing.T) {
	store := storeWithOrder(models.OrderStatusCancelled, models.PaymentStatusPendingVerification)

	_, err := ApprovePayment(store, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.OrderStatusCancelled, store.orders[0].Status)
	assert.Equal(t, models.PaymentStatusPendingVerification, store.orders[0].PaymentStatus)
	assert.Empty(t, store.history)
}

func TestCancelThenApproveDoesNotResurrect(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPendingVerification)

	_, err := UpdateOrderStatus(store, 1, TransitionRequest{Status: models.OrderStatusCancelled})
	require.NoError(t, err)

	_, err = ApprovePayment(store, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.OrderStatusCancelled, store.orders[0].Status)
	assert.Len(t, store.history, 1)
}

func TestRejectPaymentCancelledOrder(t *testing.T) {
	store := storeWithOrder(models.OrderStatusCancelled, models.PaymentStatusPendingVerification)

	_, err := RejectPayment(store, 1, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.PaymentStatusPendingVerification, store.orders[0].PaymentStatus)
	assert.Empty(t, store.history)
}

func TestRejectPayment(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPendingVerification)

	order, err := RejectPayment(store, 1, "screenshot does not match the amount")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	require.Len(t, store.history, 1)
	assert.Equal(t, models.OrderStatusCancelled, store.history[0].Status)
	assert.Contains(t, store.history[0].Notes, "screenshot does not match")
}

func TestRejectPaymentAlreadyResolved(t *testing.T) {
	store := storeWithOrder(models.OrderStatusCancelled, models.PaymentStatusFailed)

	_, err := RejectPayment(store, 1, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, store.history)
}

// Two admins racing on the same approval: the state pair guard makes the
// second conditional write match nothing.
func TestApprovePaymentLostRace(t *testing.T) {
	store := storeWithOrder(models.OrderStatusProcessing, models.PaymentStatusPendingVerification)

	_, err := ApprovePayment(store, 1)
	require.NoError(t, err)

	_, err = ApprovePayment(store, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, store.history, 1)
}

// Scenario: evidence-based order submitted then approved ends with two
// history entries total.
func TestEvidenceOrderApprovalEndToEnd(t *testing.T) {
	orders := &fakeOrderStore{}
	req := submitRequest()
	req.PaymentMethod = models.PaymentMethodBankTransfer
	req.TransactionRef = "TXN123"
	req.EvidenceURL = "https://bucket/img1.png"

	order, err := SubmitOrder(orders, &fakeDiscountStore{}, &fakeNotifier{}, req)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPendingVerification, order.PaymentStatus)

	approved, err := ApprovePayment(orders, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, approved.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, approved.Status)

	require.Len(t, orders.history, 2)
	assert.Equal(t, "Order placed", orders.history[0].Notes)
	assert.Equal(t, "Payment verified and approved", orders.history[1].Notes)
}
