package repository

import (
	"errors"

	"forge/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate returns the profile for an identity, creating an empty one
// on first access.
func (r *ProfileRepository) GetOrCreate(userID string) (*models.UserProfile, error) {
	p, err := r.GetByUserID(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = &models.UserProfile{UserID: userID}
	if err := r.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) Update(p *models.UserProfile) error {
	return r.db.Save(p).Error
}

// SetStripeCustomerID stores the processor-side customer reference.
func (r *ProfileRepository) SetStripeCustomerID(p *models.UserProfile, customerID string) error {
	p.StripeCustomerID = customerID
	return r.db.Model(p).Update("stripe_customer_id", customerID).Error
}
