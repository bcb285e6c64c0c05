package handler

import (
	"errors"
	"net/http"

	"forge/internal/domain"
	"forge/internal/middleware"
	"forge/internal/models"
	"forge/internal/repository"
	"forge/pkg/stripeclient"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentMethodHandler struct {
	methodRepo *repository.PaymentMethodRepository
	stripe     stripeclient.Client
}

func NewPaymentMethodHandler(methodRepo *repository.PaymentMethodRepository, stripe stripeclient.Client) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodRepo: methodRepo, stripe: stripe}
}

type paymentMethodView struct {
	models.PaymentMethod
	Label string `json:"label"`
}

// List returns the caller's active methods, default first.
func (h *PaymentMethodHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	methods, err := h.methodRepo.ListActive(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	views := make([]paymentMethodView, 0, len(methods))
	for i := range methods {
		views = append(views, paymentMethodView{
			PaymentMethod: methods[i],
			Label:         methods[i].Label(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"payment_methods": views})
}

// Add saves an instrument already tokenized on the Stripe side. With
// is_default set, any previous default is cleared in the same transaction.
func (h *PaymentMethodHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		StripePaymentMethodID string `json:"stripe_payment_method_id" binding:"required"`
		PaymentType           string `json:"payment_type"`
		CardBrand             string `json:"card_brand"`
		CardLast4             string `json:"card_last4"`
		CardExpMonth          *int   `json:"card_exp_month"`
		CardExpYear           *int   `json:"card_exp_year"`
		BillingName           string `json:"billing_name"`
		BillingEmail          string `json:"billing_email"`
		BillingAddressLine1   string `json:"billing_address_line1"`
		BillingAddressLine2   string `json:"billing_address_line2"`
		BillingCity           string `json:"billing_city"`
		BillingState          string `json:"billing_state"`
		BillingPostalCode     string `json:"billing_postal_code"`
		BillingCountry        string `json:"billing_country"`
		IsDefault             bool   `json:"is_default"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentType == "" {
		req.PaymentType = domain.MethodTypeCard
	}
	if !domain.MethodTypes[req.PaymentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment type"})
		return
	}
	m := &models.PaymentMethod{
		UserID:                userID,
		StripePaymentMethodID: req.StripePaymentMethodID,
		PaymentType:           req.PaymentType,
		CardBrand:             req.CardBrand,
		CardLast4:             req.CardLast4,
		CardExpMonth:          req.CardExpMonth,
		CardExpYear:           req.CardExpYear,
		BillingName:           req.BillingName,
		BillingEmail:          req.BillingEmail,
		BillingAddressLine1:   req.BillingAddressLine1,
		BillingAddressLine2:   req.BillingAddressLine2,
		BillingCity:           req.BillingCity,
		BillingState:          req.BillingState,
		BillingPostalCode:     req.BillingPostalCode,
		BillingCountry:        req.BillingCountry,
		IsDefault:             req.IsDefault,
	}
	if err := h.methodRepo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// SetDefault marks a method as the caller's default.
func (h *PaymentMethodHandler) SetDefault(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.methodRepo.SetDefault(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Deactivate soft-deletes a method. The Stripe detach runs first; if it
// fails the local deactivation still proceeds, since local state decides
// what is usable going forward.
func (h *PaymentMethodHandler) Deactivate(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	m, err := h.methodRepo.GetByIDForUser(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	warning := ""
	if err := h.stripe.DetachPaymentMethod(c.Request.Context(), m.StripePaymentMethodID); err != nil {
		warning = "could not detach from processor"
		zap.L().Warn("stripe detach failed",
			zap.String("payment_method", m.StripePaymentMethodID),
			zap.Error(err))
	}
	if err := h.methodRepo.Deactivate(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deactivate failed"})
		return
	}
	resp := gin.H{"status": "removed"}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
