package repository

import (
	"testing"

	"forge/internal/domain"
	"forge/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment(userID string) *models.Payment {
	return &models.Payment{
		UserID:   &userID,
		Variant:  "stripe",
		Currency: "USD",
		Total:    decimal.RequireFromString("49.99"),
	}
}

func TestPaymentCreateDefaults(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))

	p := newPayment("user-1")
	require.NoError(t, repo.Create(p))

	assert.Equal(t, domain.PaymentStatusWaiting, p.Status)
	assert.Equal(t, domain.FraudStatusUnknown, p.FraudStatus)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(p.Total))
}

func TestPaymentStatusMovesForwardOnly(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))

	p := newPayment("user-1")
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.UpdateStatus(p, domain.PaymentStatusConfirmed))
	require.NoError(t, repo.UpdateStatus(p, domain.PaymentStatusRefunded))

	// A finished transaction is never rewritten into another outcome.
	err := repo.UpdateStatus(p, domain.PaymentStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = repo.UpdateStatus(p, domain.PaymentStatusWaiting)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.Status)
}

func TestPaymentRejectedIsTerminal(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))

	p := newPayment("user-1")
	require.NoError(t, repo.Create(p))
	require.NoError(t, repo.UpdateStatus(p, domain.PaymentStatusRejected))

	err := repo.UpdateStatus(p, domain.PaymentStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPaymentsWithoutTransactionIDDoNotCollide(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))

	// Checkout inserts the row before the processor call returns a
	// session id, so several unreferenced rows must be able to coexist.
	first := newPayment("user-1")
	require.NoError(t, repo.Create(first))
	second := newPayment("user-2")
	require.NoError(t, repo.Create(second))
	assert.Nil(t, first.TransactionID)
	assert.Nil(t, second.TransactionID)

	require.NoError(t, repo.SetTransactionID(first, "cs_first"))
	require.NoError(t, repo.SetTransactionID(second, "cs_second"))

	_, err := repo.GetByTransactionID("")
	assert.Error(t, err)
}

func TestPaymentLookupByTransactionID(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))

	p := newPayment("user-1")
	require.NoError(t, repo.Create(p))
	require.NoError(t, repo.SetTransactionID(p, "cs_test_123"))

	got, err := repo.GetByTransactionID("cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestPurchasedItemsSingleSyntheticLine(t *testing.T) {
	p := newPayment("user-1")
	p.Description = "Dedicated hosting"

	items := p.PurchasedItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Dedicated hosting", items[0].Name)
	assert.EqualValues(t, 1, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(p.Total))
	assert.Equal(t, "USD", items[0].Currency)
	assert.Equal(t, "FORGE-SERVICE", items[0].SKU)

	p.Description = ""
	assert.Equal(t, "Service", p.PurchasedItems()[0].Name)
}
