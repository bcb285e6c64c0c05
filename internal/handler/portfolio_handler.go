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

type PortfolioHandler struct {
	portfolioRepo *repository.PortfolioRepository
}

func NewPortfolioHandler(portfolioRepo *repository.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{portfolioRepo: portfolioRepo}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioRepo.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": items})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolioRepo.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) AdminList(c *gin.Context) {
	items, err := h.portfolioRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": items})
}

type portfolioRequest struct {
	Title            string     `json:"title" binding:"required"`
	Slug             string     `json:"slug" binding:"required"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	ClientName       string     `json:"client_name"`
	ProjectDate      *time.Time `json:"project_date"`
	TechnologiesUsed string     `json:"technologies_used"`
	ProjectURL       string     `json:"project_url"`
	ImageURL         string     `json:"image_url"`
	IsFeatured       bool       `json:"is_featured"`
	IsPublished      *bool      `json:"is_published"`
}

func (h *PortfolioHandler) AdminCreate(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &models.PortfolioItem{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ClientName:       req.ClientName,
		ProjectDate:      req.ProjectDate,
		TechnologiesUsed: req.TechnologiesUsed,
		ProjectURL:       req.ProjectURL,
		ImageURL:         req.ImageURL,
		IsFeatured:       req.IsFeatured,
		IsPublished:      true,
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
	if err := h.portfolioRepo.Create(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *PortfolioHandler) AdminUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.portfolioRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.Title = req.Title
	item.Slug = req.Slug
	item.Description = req.Description
	item.ShortDescription = req.ShortDescription
	item.ClientName = req.ClientName
	item.ProjectDate = req.ProjectDate
	item.TechnologiesUsed = req.TechnologiesUsed
	item.ProjectURL = req.ProjectURL
	item.ImageURL = req.ImageURL
	item.IsFeatured = req.IsFeatured
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
	if err := h.portfolioRepo.Update(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.portfolioRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
