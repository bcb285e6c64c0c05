package handler

import (
	"errors"
	"net/http"

	"forge/internal/models"
	"forge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageHandler struct {
	pageRepo *repository.PageRepository
}

func NewPageHandler(pageRepo *repository.PageRepository) *PageHandler {
	return &PageHandler{pageRepo: pageRepo}
}

func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.pageRepo.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) Get(c *gin.Context) {
	page, err := h.pageRepo.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) AdminList(c *gin.Context) {
	pages, err := h.pageRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) AdminCreate(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Content     string `json:"content"`
		IsPublished *bool  `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := &models.Page{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if err := h.pageRepo.Create(page); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, page)
}

func (h *PageHandler) AdminUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	page, err := h.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		Title       *string `json:"title"`
		Slug        *string `json:"slug"`
		Content     *string `json:"content"`
		IsPublished *bool   `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Slug != nil {
		page.Slug = *req.Slug
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if err := h.pageRepo.Update(page); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.pageRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
