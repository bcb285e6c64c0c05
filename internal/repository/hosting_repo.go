package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostingRepository struct {
	db *gorm.DB
}

func NewHostingRepository(db *gorm.DB) *HostingRepository {
	return &HostingRepository{db: db}
}

func (r *HostingRepository) ListActive() ([]models.HostingPlan, error) {
	var plans []models.HostingPlan
	err := r.db.Where("is_active = ?", true).
		Order("is_featured DESC, name").
		Find(&plans).Error
	return plans, err
}

func (r *HostingRepository) ListAll() ([]models.HostingPlan, error) {
	var plans []models.HostingPlan
	err := r.db.Order("is_featured DESC, name").Find(&plans).Error
	return plans, err
}

func (r *HostingRepository) GetActiveBySlug(slug string) (*models.HostingPlan, error) {
	var p models.HostingPlan
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HostingRepository) GetByID(id uuid.UUID) (*models.HostingPlan, error) {
	var p models.HostingPlan
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HostingRepository) Create(p *models.HostingPlan) error {
	return r.db.Create(p).Error
}

func (r *HostingRepository) Update(p *models.HostingPlan) error {
	return r.db.Save(p).Error
}

func (r *HostingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HostingPlan{}, "id = ?", id).Error
}
