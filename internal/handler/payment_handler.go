package handler

import (
	"errors"
	"net/http"

	"forge/config"
	"forge/internal/middleware"
	"forge/internal/models"
	"forge/internal/repository"
	"forge/pkg/stripeclient"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentHandler opens checkout flows and lists transaction history. The
// actual charge happens on Stripe's hosted page; status lands back through
// the webhook handler.
type PaymentHandler struct {
	cfg         *config.Config
	paymentRepo *repository.PaymentRepository
	orderRepo   *repository.OrderRepository
	methodRepo  *repository.PaymentMethodRepository
	profileRepo *repository.ProfileRepository
	stripe      stripeclient.Client
}

func NewPaymentHandler(
	cfg *config.Config,
	paymentRepo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	methodRepo *repository.PaymentMethodRepository,
	profileRepo *repository.ProfileRepository,
	stripe stripeclient.Client,
) *PaymentHandler {
	return &PaymentHandler{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		methodRepo:  methodRepo,
		profileRepo: profileRepo,
		stripe:      stripe,
	}
}

// Checkout creates a pending Payment and Order pair and returns the
// Stripe redirect URL. Amounts and currency are fixed here; only the
// webhook path moves the payment's status afterwards.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Amount          decimal.Decimal `json:"amount" binding:"required"`
		Currency        string          `json:"currency"`
		Description     string          `json:"description"`
		PaymentMethodID *uuid.UUID      `json:"payment_method_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	var methodID *uuid.UUID
	if req.PaymentMethodID != nil {
		m, err := h.methodRepo.GetByIDForUser(userID, *req.PaymentMethodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		methodID = &m.ID
	}

	profile, err := h.profileRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	if profile.StripeCustomerID == "" {
		customerID, err := h.stripe.EnsureCustomer(c.Request.Context(), middleware.GetEmail(c), profile.Company)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "processor unavailable"})
			return
		}
		if err := h.profileRepo.SetStripeCustomerID(profile, customerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
			return
		}
	}

	payment := &models.Payment{
		UserID:          &userID,
		PaymentMethodID: methodID,
		Variant:         "stripe",
		Currency:        req.Currency,
		Total:           req.Amount,
		Description:     req.Description,
	}
	if err := h.paymentRepo.Create(payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment create failed"})
		return
	}

	order := &models.Order{
		UserID:          &userID,
		PaymentID:       &payment.ID,
		PaymentMethodID: methodID,
		TotalAmount:     req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
	}
	if err := h.orderRepo.Create(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order create failed"})
		return
	}

	var items []stripeclient.LineItem
	for _, it := range payment.PurchasedItems() {
		items = append(items, stripeclient.LineItem{
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitAmountCents: it.Price.Mul(decimal.NewFromInt(100)).IntPart(),
			Currency:        it.Currency,
		})
	}
	sessionID, sessionURL, err := h.stripe.CreateCheckoutSession(c.Request.Context(), stripeclient.CheckoutParams{
		CustomerID:      profile.StripeCustomerID,
		ClientReference: payment.ID.String(),
		SuccessURL:      h.cfg.Server.PublicURL + payment.SuccessURL(),
		CancelURL:       h.cfg.Server.PublicURL + payment.FailureURL(),
		Items:           items,
	})
	if err != nil {
		zap.L().Error("checkout session create failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "processor unavailable"})
		return
	}
	if err := h.paymentRepo.SetTransactionID(payment, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment update failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment_id":   payment.ID,
		"order_id":     order.ID,
		"checkout_url": sessionURL,
	})
}

// ListMine returns the caller's transaction history, newest first.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	payments, err := h.paymentRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
