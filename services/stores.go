package services

import (
	"errors"

	"github.com/kinmelhub/kinmel-api/models"
	"gorm.io/gorm"
)

// GormDiscountStore backs the discount engine with the application
// database.
type GormDiscountStore struct {
	DB *gorm.DB
}

func (s GormDiscountStore) FindByCode(code string) (*models.DiscountCode, error) {
	var dc models.DiscountCode
	if err := s.DB.Where("code = ?", code).First(&dc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &dc, nil
}

func (s GormDiscountStore) FindForProducts(productIds []int) ([]models.DiscountCode, error) {
	var codes []models.DiscountCode
	err := s.DB.
		Joins("JOIN product_discount_links ON product_discount_links.discount_code_id = discount_codes.id").
		Where("product_discount_links.product_id IN ?", productIds).
		Where("product_discount_links.deleted_at IS NULL").
		Group("discount_codes.id").
		Order("MIN(product_discount_links.id)").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// IncrementUsage is a single conditional UPDATE so that two checkouts
// racing near the usage cap cannot push current_uses past max_uses.
func (s GormDiscountStore) IncrementUsage(id uint) error {
	result := s.DB.Model(&models.DiscountCode{}).
		Where("id = ? AND (max_uses IS NULL OR current_uses < max_uses)", id).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountUsageExceeded
	}
	return nil
}

// GormOrderStore backs order submission and the lifecycle state machine.
type GormOrderStore struct {
	DB *gorm.DB
}

func (s GormOrderStore) CreateOrder(order *models.Order) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (s GormOrderStore) AppendHistory(entry *models.StatusHistory) error {
	return s.DB.Create(entry).Error
}

func (s GormOrderStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s GormOrderStore) TransitionOrder(id uint, fromStatus, fromPayment string, updates map[string]any) (bool, error) {
	result := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ? AND payment_status = ?", id, fromStatus, fromPayment).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
