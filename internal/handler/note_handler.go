package handler

import (
	"errors"
	"net/http"
	"time"

	"forge/internal/models"
	"forge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteHandler struct {
	noteRepo *repository.NoteRepository
}

func NewNoteHandler(noteRepo *repository.NoteRepository) *NoteHandler {
	return &NoteHandler{noteRepo: noteRepo}
}

func (h *NoteHandler) List(c *gin.Context) {
	posts, err := h.noteRepo.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": posts})
}

func (h *NoteHandler) Get(c *gin.Context) {
	post, err := h.noteRepo.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddComment accepts a reader comment on a published note. Comments stay
// hidden until an admin approves them.
func (h *NoteHandler) AddComment(c *gin.Context) {
	post, err := h.noteRepo.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		AuthorName  string `json:"author_name" binding:"required"`
		AuthorEmail string `json:"author_email" binding:"required,email"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment := &models.BlogComment{
		PostID:      post.ID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	}
	if err := h.noteRepo.CreateComment(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "pending approval"})
}

func (h *NoteHandler) AdminList(c *gin.Context) {
	posts, err := h.noteRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": posts})
}

func (h *NoteHandler) AdminCreate(c *gin.Context) {
	var req struct {
		Title           string `json:"title" binding:"required"`
		Slug            string `json:"slug" binding:"required"`
		Content         string `json:"content"`
		Excerpt         string `json:"excerpt"`
		AuthorName      string `json:"author_name"`
		IsPublished     bool   `json:"is_published"`
		ReadTimeMinutes int    `json:"read_time_minutes"`
		Tags            string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := &models.BlogPost{
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		AuthorName:      req.AuthorName,
		IsPublished:     req.IsPublished,
		ReadTimeMinutes: req.ReadTimeMinutes,
		Tags:            req.Tags,
	}
	if post.ReadTimeMinutes == 0 {
		post.ReadTimeMinutes = 5
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedDate = &now
	}
	if err := h.noteRepo.Create(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *NoteHandler) AdminUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	post, err := h.noteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		Title           *string `json:"title"`
		Slug            *string `json:"slug"`
		Content         *string `json:"content"`
		Excerpt         *string `json:"excerpt"`
		AuthorName      *string `json:"author_name"`
		IsPublished     *bool   `json:"is_published"`
		ReadTimeMinutes *int    `json:"read_time_minutes"`
		Tags            *string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.AuthorName != nil {
		post.AuthorName = *req.AuthorName
	}
	if req.ReadTimeMinutes != nil {
		post.ReadTimeMinutes = *req.ReadTimeMinutes
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.IsPublished != nil {
		if *req.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedDate = &now
		}
		post.IsPublished = *req.IsPublished
	}
	if err := h.noteRepo.Update(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *NoteHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.noteRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *NoteHandler) AdminListPendingComments(c *gin.Context) {
	comments, err := h.noteRepo.ListPendingComments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *NoteHandler) AdminApproveComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.noteRepo.ApproveComment(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}
