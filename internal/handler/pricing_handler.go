package handler

import (
	"errors"
	"net/http"

	"forge/internal/models"
	"forge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PricingHandler struct {
	pricingRepo *repository.PricingRepository
}

func NewPricingHandler(pricingRepo *repository.PricingRepository) *PricingHandler {
	return &PricingHandler{pricingRepo: pricingRepo}
}

func (h *PricingHandler) List(c *gin.Context) {
	plans, err := h.pricingRepo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PricingHandler) AdminList(c *gin.Context) {
	plans, err := h.pricingRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

type pricingPlanRequest struct {
	Name         string           `json:"name" binding:"required"`
	Slug         string           `json:"slug" binding:"required"`
	Description  string           `json:"description"`
	Price        *decimal.Decimal `json:"price"` // null for custom pricing
	IsFeatured   bool             `json:"is_featured"`
	IsActive     *bool            `json:"is_active"`
	DisplayOrder int              `json:"display_order"`
}

func (h *PricingHandler) AdminCreate(c *gin.Context) {
	var req pricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan := &models.PricingPlan{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := h.pricingRepo.Create(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PricingHandler) AdminUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	plan, err := h.pricingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req pricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.Name = req.Name
	plan.Slug = req.Slug
	plan.Description = req.Description
	plan.Price = req.Price
	plan.IsFeatured = req.IsFeatured
	plan.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := h.pricingRepo.Update(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PricingHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.pricingRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *PricingHandler) AdminAddFeature(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := h.pricingRepo.GetByID(planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		FeatureText  string `json:"feature_text" binding:"required"`
		IsIncluded   *bool  `json:"is_included"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	feature := &models.PricingFeature{
		PlanID:       planID,
		FeatureText:  req.FeatureText,
		IsIncluded:   true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsIncluded != nil {
		feature.IsIncluded = *req.IsIncluded
	}
	if err := h.pricingRepo.AddFeature(feature); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, feature)
}

func (h *PricingHandler) AdminDeleteFeature(c *gin.Context) {
	id, err := uuid.Parse(c.Param("feature_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.pricingRepo.DeleteFeature(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
