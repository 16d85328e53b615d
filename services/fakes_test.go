package services

import (
	"time"

	"github.com/kinmelhub/kinmel-api/models"
)

// In-memory fakes for the store interfaces, so the engine, coordinator and
// state machine are tested without a database.

type fakeDiscountStore struct {
	byCode       map[string]*models.DiscountCode
	automatic    []models.DiscountCode
	increments   []uint
	incrementErr error
}

func (f *fakeDiscountStore) FindByCode(code string) (*models.DiscountCode, error) {
	dc, ok := f.byCode[code]
	if !ok {
		return nil, ErrDiscountNotFound
	}
	return dc, nil
}

func (f *fakeDiscountStore) FindForProducts(productIds []int) ([]models.DiscountCode, error) {
	return f.automatic, nil
}

func (f *fakeDiscountStore) IncrementUsage(id uint) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments = append(f.increments, id)
	return nil
}

type fakeOrderStore struct {
	orders     []*models.Order
	history    []*models.StatusHistory
	createErr  error
	historyErr error
	nextID     uint
}

func (f *fakeOrderStore) CreateOrder(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderStore) AppendHistory(entry *models.StatusHistory) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	f.history = append(f.history, entry)
	return nil
}

func (f *fakeOrderStore) GetOrder(id uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (f *fakeOrderStore) TransitionOrder(id uint, fromStatus, fromPayment string, updates map[string]any) (bool, error) {
	for _, o := range f.orders {
		if o.ID != id {
			continue
		}
		if o.Status != fromStatus || o.PaymentStatus != fromPayment {
			return false, nil
		}
		if v, ok := updates["status"].(string); ok {
			o.Status = v
		}
		if v, ok := updates["payment_status"].(string); ok {
			o.PaymentStatus = v
		}
		if v, ok := updates["tracking_number"].(string); ok {
			o.TrackingNumber = v
		}
		if v, ok := updates["estimated_delivery"].(*time.Time); ok {
			o.EstimatedDelivery = v
		}
		return true, nil
	}
	return false, nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) Notify(title, message, severity string, entityID uint, entityType string) {
	f.titles = append(f.titles, title)
}
