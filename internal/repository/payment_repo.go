package repository

import (
	"errors"
	"fmt"

	"forge/internal/domain"
	"forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidTransition is returned when a status update would move a
// payment backwards through its lifecycle.
var ErrInvalidTransition = errors.New("invalid payment status transition")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	if p.Status == "" {
		p.Status = domain.PaymentStatusWaiting
	}
	if p.FraudStatus == "" {
		p.FraudStatus = domain.FraudStatusUnknown
	}
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByTransactionID(ref string) (*models.Payment, error) {
	if ref == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var p models.Payment
	err := r.db.Where("transaction_id = ?", ref).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByUser(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// SetTransactionID records the processor-side reference once the charge
// flow is opened. Not a status change.
func (r *PaymentRepository) SetTransactionID(p *models.Payment, ref string) error {
	p.TransactionID = &ref
	return r.db.Model(p).Update("transaction_id", ref).Error
}

// UpdateStatus applies a processor-reported transition. Backward or
// unknown transitions are rejected so a completed transaction is never
// rewritten into a different outcome.
func (r *PaymentRepository) UpdateStatus(p *models.Payment, status string) error {
	if !domain.CanTransitionPayment(p.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, status)
	}
	p.Status = status
	return r.db.Model(p).Update("status", status).Error
}

// SetCaptured records the captured amount alongside a confirm.
func (r *PaymentRepository) SetCaptured(p *models.Payment) error {
	p.CapturedAmount = p.Total
	return r.db.Model(p).Update("captured_amount", p.CapturedAmount).Error
}
