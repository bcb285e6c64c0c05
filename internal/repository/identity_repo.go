package repository

import (
	"forge/internal/models"

	"gorm.io/gorm"
)

// IdentityRepository handles the fallout of an identity being deleted in
// the external identity provider. Financial history is never deleted:
// Payment and Order rows stay, their references become null.
type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Purge removes the identity's profile and saved payment methods and
// nulls the identity and method references on surviving payments and
// orders, all in one transaction.
func (r *IdentityRepository) Purge(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		methodIDs := tx.Model(&models.PaymentMethod{}).
			Select("id").Where("user_id = ?", userID)

		if err := tx.Model(&models.Payment{}).
			Where("payment_method_id IN (?)", methodIDs).
			Update("payment_method_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("payment_method_id IN (?)", methodIDs).
			Update("payment_method_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Payment{}).
			Where("user_id = ?", userID).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("user_id = ?", userID).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.PaymentMethod{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).
			Delete(&models.UserProfile{}).Error
	})
}
