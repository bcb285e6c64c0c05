package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) ListPublished() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Where("is_published = ?", true).Order("title").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) ListAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("title").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) GetPublishedBySlug(slug string) (*models.Page, error) {
	var p models.Page
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) GetByID(id uuid.UUID) (*models.Page, error) {
	var p models.Page
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) Create(p *models.Page) error {
	return r.db.Create(p).Error
}

func (r *PageRepository) Update(p *models.Page) error {
	return r.db.Save(p).Error
}

func (r *PageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Page{}, "id = ?", id).Error
}
