package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) ListPublished() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Where("is_published = ?", true).
		Order("is_featured DESC, project_date DESC, title").
		Find(&items).Error
	return items, err
}

func (r *PortfolioRepository) ListAll() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Order("is_featured DESC, project_date DESC, title").Find(&items).Error
	return items, err
}

func (r *PortfolioRepository) GetPublishedBySlug(slug string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) GetByID(id uuid.UUID) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *PortfolioRepository) Update(item *models.PortfolioItem) error {
	return r.db.Save(item).Error
}

func (r *PortfolioRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PortfolioItem{}, "id = ?", id).Error
}
