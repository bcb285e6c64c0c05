package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// ListActive returns active plans with their features, plan display
// order first, features in their own display order.
func (r *PricingRepository) ListActive() ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	err := r.db.Where("is_active = ?", true).
		Order("display_order, name").
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, feature_text")
		}).
		Find(&plans).Error
	return plans, err
}

func (r *PricingRepository) ListAll() ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	err := r.db.Order("display_order, name").Preload("Features").Find(&plans).Error
	return plans, err
}

func (r *PricingRepository) GetByID(id uuid.UUID) (*models.PricingPlan, error) {
	var plan models.PricingPlan
	err := r.db.Preload("Features").First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PricingRepository) Create(plan *models.PricingPlan) error {
	return r.db.Create(plan).Error
}

func (r *PricingRepository) Update(plan *models.PricingPlan) error {
	return r.db.Save(plan).Error
}

func (r *PricingRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&models.PricingFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PricingPlan{}, "id = ?", id).Error
	})
}

func (r *PricingRepository) AddFeature(f *models.PricingFeature) error {
	return r.db.Create(f).Error
}

func (r *PricingRepository) DeleteFeature(id uuid.UUID) error {
	return r.db.Delete(&models.PricingFeature{}, "id = ?", id).Error
}
