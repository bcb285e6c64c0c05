package repository

import (
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListPublished() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("is_published = ?", true).
		Order("published_date DESC, created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *NoteRepository) ListAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("published_date DESC, created_at DESC").Find(&posts).Error
	return posts, err
}

// GetPublishedBySlug loads a post with its approved comments, oldest
// comment first.
func (r *NoteRepository) GetPublishedBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at")
		}).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *NoteRepository) GetByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *NoteRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *NoteRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *NoteRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.BlogComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, "id = ?", id).Error
	})
}

// CreateComment stores a reader comment; it stays hidden until approved.
func (r *NoteRepository) CreateComment(c *models.BlogComment) error {
	c.IsApproved = false
	return r.db.Create(c).Error
}

func (r *NoteRepository) ApproveComment(id uuid.UUID) error {
	res := r.db.Model(&models.BlogComment{}).Where("id = ?", id).Update("is_approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NoteRepository) ListPendingComments() ([]models.BlogComment, error) {
	var comments []models.BlogComment
	err := r.db.Where("is_approved = ?", false).Order("created_at").Find(&comments).Error
	return comments, err
}
