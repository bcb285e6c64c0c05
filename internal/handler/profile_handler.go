package handler

import (
	"net/http"

	"forge/internal/middleware"
	"forge/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileHandler(profileRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

// Get returns the caller's profile, creating an empty one on first access.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	profile, err := h.profileRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Phone   *string `json:"phone"`
		Company *string `json:"company"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.profileRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if err := h.profileRepo.Update(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
