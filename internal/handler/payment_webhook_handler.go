package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"forge/config"
	"forge/internal/domain"
	"forge/internal/models"
	"forge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentWebhookHandler is the only writer of payment status. It consumes
// Stripe events, resolves the local payment and applies forward-only
// transitions; everything it cannot resolve is acknowledged and dropped
// so Stripe stops retrying.
type PaymentWebhookHandler struct {
	cfg         *config.Config
	paymentRepo *repository.PaymentRepository
}

func NewPaymentWebhookHandler(cfg *config.Config, paymentRepo *repository.PaymentRepository) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{cfg: cfg, paymentRepo: paymentRepo}
}

type checkoutSessionPayload struct {
	ID                string `json:"id"`
	ClientReferenceID string `json:"client_reference_id"`
	PaymentIntent     string `json:"payment_intent"`
	PaymentStatus     string `json:"payment_status"`
}

type chargePayload struct {
	PaymentIntent string `json:"payment_intent"`
}

func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	var event stripe.Event
	if secret := h.cfg.Stripe.WebhookSecret; secret != "" {
		event, err = webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), secret)
		if err != nil {
			zap.L().Warn("stripe webhook signature rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
	} else if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		h.sessionOutcome(c, event, domain.PaymentStatusConfirmed)
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		h.sessionOutcome(c, event, domain.PaymentStatusRejected)
	case "charge.refunded":
		h.chargeRefunded(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *PaymentWebhookHandler) sessionOutcome(c *gin.Context, event stripe.Event, status string) {
	var sess checkoutSessionPayload
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event object"})
		return
	}
	p := h.resolve(sess)
	if p == nil {
		zap.L().Warn("webhook for unknown payment", zap.String("session", sess.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	// Completed sessions that are not yet paid confirm later via
	// async_payment_succeeded.
	if status == domain.PaymentStatusConfirmed && sess.PaymentStatus != "" && sess.PaymentStatus != "paid" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	// Swap the session reference for the durable transaction id before
	// confirming, so a refund event can always resolve by payment intent.
	// Failing here makes Stripe redeliver, and the swap is idempotent.
	if status == domain.PaymentStatusConfirmed && sess.PaymentIntent != "" {
		if err := h.paymentRepo.SetTransactionID(p, sess.PaymentIntent); err != nil {
			zap.L().Warn("transaction reference swap failed",
				zap.String("payment_id", p.ID.String()),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
	}
	if err := h.paymentRepo.UpdateStatus(p, status); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			// Replayed or out-of-order event; the recorded outcome stands.
			zap.L().Debug("webhook transition ignored",
				zap.String("payment_id", p.ID.String()),
				zap.String("from", p.Status), zap.String("to", status))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if status == domain.PaymentStatusConfirmed {
		if err := h.paymentRepo.SetCaptured(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
	}
	zap.L().Info("payment status updated",
		zap.String("payment_id", p.ID.String()),
		zap.String("status", status))
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *PaymentWebhookHandler) chargeRefunded(c *gin.Context, event stripe.Event) {
	var charge chargePayload
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event object"})
		return
	}
	p, err := h.paymentRepo.GetByTransactionID(charge.PaymentIntent)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if err := h.paymentRepo.UpdateStatus(p, domain.PaymentStatusRefunded); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	zap.L().Info("payment refunded", zap.String("payment_id", p.ID.String()))
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// resolve finds the local payment by client reference (our payment id)
// first, falling back to the stored session id.
func (h *PaymentWebhookHandler) resolve(sess checkoutSessionPayload) *models.Payment {
	if sess.ClientReferenceID != "" {
		if id, err := uuid.Parse(sess.ClientReferenceID); err == nil {
			if p, err := h.paymentRepo.GetByID(id); err == nil {
				return p
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
		}
	}
	if sess.ID != "" {
		if p, err := h.paymentRepo.GetByTransactionID(sess.ID); err == nil {
			return p
		}
	}
	return nil
}
