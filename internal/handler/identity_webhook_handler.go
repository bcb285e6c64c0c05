package handler

import (
	"net/http"

	"forge/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityWebhookHandler consumes deletion events from the external
// identity provider. Profiles and saved methods go; payments and orders
// stay with their identity reference nulled.
type IdentityWebhookHandler struct {
	identityRepo *repository.IdentityRepository
}

func NewIdentityWebhookHandler(identityRepo *repository.IdentityRepository) *IdentityWebhookHandler {
	return &IdentityWebhookHandler{identityRepo: identityRepo}
}

func (h *IdentityWebhookHandler) Handle(c *gin.Context) {
	var payload struct {
		Event  string `json:"event" binding:"required"`
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Event != "identity.deleted" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if err := h.identityRepo.Purge(payload.UserID); err != nil {
		zap.L().Error("identity purge failed", zap.String("user_id", payload.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "purge failed"})
		return
	}
	zap.L().Info("identity purged", zap.String("user_id", payload.UserID))
	c.JSON(http.StatusOK, gin.H{"received": true})
}
