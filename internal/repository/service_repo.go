package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListActive() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("is_active = ?", true).
		Order("is_featured DESC, name").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) ListAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("is_featured DESC, name").Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetActiveBySlug(slug string) (*models.Service, error) {
	var s models.Service
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var s models.Service
	err := r.db.First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(s *models.Service) error {
	return r.db.Create(s).Error
}

func (r *ServiceRepository) Update(s *models.Service) error {
	return r.db.Save(s).Error
}

func (r *ServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
