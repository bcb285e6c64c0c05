package repository

import (
	"errors"

	"forge/internal/domain"
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *models.Order) error {
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var o models.Order
	err := r.db.Preload("Payment").First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus sets the order's status. Callers decide the status
// themselves (typically after reading the linked payment); nothing here
// derives it from Payment.
func (r *OrderRepository) UpdateStatus(o *models.Order, status string) error {
	if !domain.OrderStatuses[status] {
		return ErrUnknownOrderStatus
	}
	o.Status = status
	return r.db.Model(o).Update("status", status).Error
}

// UpdateNotes replaces the free-form back-office notes.
func (r *OrderRepository) UpdateNotes(o *models.Order, notes string) error {
	o.Notes = notes
	return r.db.Model(o).Update("notes", notes).Error
}
