package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethodRepository maintains the saved instruments for a user and
// the at-most-one-default invariant. Every default mutation runs inside a
// single transaction scoped to the user's rows so the invariant holds
// under concurrent requests.
type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create inserts a new active method. When the method is created as the
// default, other defaults for the user are cleared in the same
// transaction as the insert.
func (r *PaymentMethodRepository) Create(m *models.PaymentMethod) error {
	m.IsActive = true
	if !m.IsDefault {
		return r.db.Create(m).Error
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentMethod{}).
			Where("user_id = ? AND is_default = ?", m.UserID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
}

// GetByIDForUser returns the active method only if it belongs to the
// given user; gorm.ErrRecordNotFound otherwise.
func (r *PaymentMethodRepository) GetByIDForUser(userID string, id uuid.UUID) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := r.db.Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SetDefault makes the given method the user's default. Clear and set
// happen in one transaction; the operation is idempotent.
func (r *PaymentMethodRepository) SetDefault(userID string, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m models.PaymentMethod
		if err := tx.Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PaymentMethod{}).
			Where("user_id = ? AND id <> ? AND is_default = ?", userID, id, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		if m.IsDefault {
			return nil
		}
		return tx.Model(&m).Update("is_default", true).Error
	})
}

// Deactivate soft-deletes the method. The default flag is cleared along
// with is_active so listings never lead with a dead method. The row stays
// in the table for history.
func (r *PaymentMethodRepository) Deactivate(userID string, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m models.PaymentMethod
		if err := tx.Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).First(&m).Error; err != nil {
			return err
		}
		return tx.Model(&m).Updates(map[string]interface{}{
			"is_active":  false,
			"is_default": false,
		}).Error
	})
}

// ListActive returns the user's usable methods, default first, then
// newest first.
func (r *PaymentMethodRepository) ListActive(userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("is_default DESC, created_at DESC").
		Find(&methods).Error
	return methods, err
}

// CountDefaults reports how many default rows a user has, active or not.
func (r *PaymentMethodRepository) CountDefaults(userID string) (int64, error) {
	var n int64
	err := r.db.Model(&models.PaymentMethod{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&n).Error
	return n, err
}
