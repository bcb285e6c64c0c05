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

type HostingHandler struct {
	hostingRepo *repository.HostingRepository
}

func NewHostingHandler(hostingRepo *repository.HostingRepository) *HostingHandler {
	return &HostingHandler{hostingRepo: hostingRepo}
}

func (h *HostingHandler) List(c *gin.Context) {
	plans, err := h.hostingRepo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hosting_plans": plans})
}

func (h *HostingHandler) Get(c *gin.Context) {
	plan, err := h.hostingRepo.GetActiveBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hosting plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *HostingHandler) AdminList(c *gin.Context) {
	plans, err := h.hostingRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hosting_plans": plans})
}

type hostingPlanRequest struct {
	Name         string           `json:"name" binding:"required"`
	Slug         string           `json:"slug" binding:"required"`
	Description  string           `json:"description"`
	CPU          string           `json:"cpu"`
	RAM          string           `json:"ram"`
	Storage      string           `json:"storage"`
	Bandwidth    string           `json:"bandwidth"`
	PriceMonthly *decimal.Decimal `json:"price_monthly"`
	IsFeatured   bool             `json:"is_featured"`
	IsActive     *bool            `json:"is_active"`
}

func (h *HostingHandler) AdminCreate(c *gin.Context) {
	var req hostingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan := &models.HostingPlan{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		CPU:          req.CPU,
		RAM:          req.RAM,
		Storage:      req.Storage,
		Bandwidth:    req.Bandwidth,
		PriceMonthly: req.PriceMonthly,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := h.hostingRepo.Create(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *HostingHandler) AdminUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	plan, err := h.hostingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hosting plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req hostingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.Name = req.Name
	plan.Slug = req.Slug
	plan.Description = req.Description
	plan.CPU = req.CPU
	plan.RAM = req.RAM
	plan.Storage = req.Storage
	plan.Bandwidth = req.Bandwidth
	plan.PriceMonthly = req.PriceMonthly
	plan.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := h.hostingRepo.Update(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *HostingHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.hostingRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
