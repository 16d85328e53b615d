package services

import (
	"log"
	"time"

	"github.com/kinmelhub/kinmel-api/models"
)

// LifecycleStore is the persistence surface for order state transitions.
type LifecycleStore interface {
	GetOrder(id uint) (*models.Order, error)
	// TransitionOrder applies updates only while the order still holds the
	// given status pair, reporting whether a row was changed. This is what
	// serializes concurrent admin actions: the loser of a race matches
	// nothing and changes nothing.
	TransitionOrder(id uint, fromStatus, fromPayment string, updates map[string]any) (bool, error)
	AppendHistory(entry *models.StatusHistory) error
}

// nextStatus is the forward-only fulfillment chain.
var nextStatus = map[string]string{
	models.OrderStatusProcessing:     models.OrderStatusConfirmed,
	models.OrderStatusConfirmed:      models.OrderStatusShipped,
	models.OrderStatusShipped:        models.OrderStatusOutForDelivery,
	models.OrderStatusOutForDelivery: models.OrderStatusDelivered,
}

func isTerminalStatus(status string) bool {
	return status == models.OrderStatusDelivered || status == models.OrderStatusCancelled
}

// CanTransition reports whether the fulfillment axis may move from
// current to target: one step forward along the chain, or to cancelled
// from any non-terminal status.
func CanTransition(current, target string) bool {
	if target == models.OrderStatusCancelled {
		return !isTerminalStatus(current)
	}
	return nextStatus[current] == target
}

type TransitionRequest struct {
	Status            string
	TrackingNumber    string
	EstimatedDelivery *time.Time
	Notes             string
}

// UpdateOrderStatus moves an order one step along the fulfillment axis.
// The payment axis is untouched: a paid order walks to delivered without
// its payment status ever being re-checked here.
func UpdateOrderStatus(store LifecycleStore, orderID uint, req TransitionRequest) (*models.Order, error) {
	order, err := store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(order.Status, req.Status) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]any{"status": req.Status}
	if req.TrackingNumber != "" {
		updates["tracking_number"] = req.TrackingNumber
	}
	if req.EstimatedDelivery != nil {
		updates["estimated_delivery"] = req.EstimatedDelivery
	}

	ok, err := store.TransitionOrder(order.ID, order.Status, order.PaymentStatus, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	notes := req.Notes
	if notes == "" {
		notes = "Order status updated to " + req.Status
	}
	appendTransitionHistory(store, order.ID, req.Status, notes)

	order.Status = req.Status
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.EstimatedDelivery != nil {
		order.EstimatedDelivery = req.EstimatedDelivery
	}
	return order, nil
}

// ApprovePayment is the one junction where the two state axes couple: the
// admin accepting uploaded evidence marks the order paid and confirmed in
// a single conditional write. Terminal orders stay terminal: a cancelled
// order whose payment was never resolved cannot be resurrected here.
func ApprovePayment(store LifecycleStore, orderID uint) (*models.Order, error) {
	order, err := store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(order.Status) || order.PaymentStatus != models.PaymentStatusPendingVerification {
		return nil, ErrInvalidTransition
	}

	ok, err := store.TransitionOrder(order.ID, order.Status, models.PaymentStatusPendingVerification, map[string]any{
		"payment_status": models.PaymentStatusPaid,
		"status":         models.OrderStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	appendTransitionHistory(store, order.ID, models.OrderStatusConfirmed, "Payment verified and approved")

	order.PaymentStatus = models.PaymentStatusPaid
	order.Status = models.OrderStatusConfirmed
	return order, nil
}

// RejectPayment is the failing half of the verification junction: the
// payment is marked failed and the order cancelled together.
func RejectPayment(store LifecycleStore, orderID uint, reason string) (*models.Order, error) {
	order, err := store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(order.Status) || order.PaymentStatus != models.PaymentStatusPendingVerification {
		return nil, ErrInvalidTransition
	}

	ok, err := store.TransitionOrder(order.ID, order.Status, models.PaymentStatusPendingVerification, map[string]any{
		"payment_status": models.PaymentStatusFailed,
		"status":         models.OrderStatusCancelled,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	notes := "Payment rejected"
	if reason != "" {
		notes = "Payment rejected: " + reason
	}
	appendTransitionHistory(store, order.ID, models.OrderStatusCancelled, notes)

	order.PaymentStatus = models.PaymentStatusFailed
	order.Status = models.OrderStatusCancelled
	return order, nil
}

func appendTransitionHistory(store LifecycleStore, orderID uint, status, notes string) {
	if err := store.AppendHistory(&models.StatusHistory{
		OrderID: orderID,
		Status:  status,
		Notes:   notes,
	}); err != nil {
		// The transition itself committed; the audit row is best-effort.
		log.Printf("Order %d: failed to append history entry: %v", orderID, err)
	}
}
