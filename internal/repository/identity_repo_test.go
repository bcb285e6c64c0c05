package repository

import (
	"testing"

	"forge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeKeepsFinancialHistory(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepository(db)
	methods := NewPaymentMethodRepository(db)
	payments := NewPaymentRepository(db)
	orders := NewOrderRepository(db)
	identity := NewIdentityRepository(db)

	_, err := profiles.GetOrCreate("user-1")
	require.NoError(t, err)

	m := newMethod("user-1", true)
	require.NoError(t, methods.Create(m))

	p := newPayment("user-1")
	p.PaymentMethodID = &m.ID
	require.NoError(t, payments.Create(p))

	o := newOrder("user-1")
	o.PaymentID = &p.ID
	o.PaymentMethodID = &m.ID
	require.NoError(t, orders.Create(o))

	require.NoError(t, identity.Purge("user-1"))

	// Profile and methods are gone.
	_, err = profiles.GetByUserID("user-1")
	assert.Error(t, err)
	var methodCount int64
	require.NoError(t, db.Model(&models.PaymentMethod{}).Where("user_id = ?", "user-1").Count(&methodCount).Error)
	assert.Zero(t, methodCount)

	// Payment survives with its references nulled, everything else intact.
	gotP, err := payments.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, gotP.UserID)
	assert.Nil(t, gotP.PaymentMethodID)
	assert.True(t, gotP.Total.Equal(p.Total))
	assert.Equal(t, p.Status, gotP.Status)

	// Order survives the same way.
	gotO, err := orders.GetByID(o.ID)
	require.NoError(t, err)
	assert.Nil(t, gotO.UserID)
	assert.Nil(t, gotO.PaymentMethodID)
	require.NotNil(t, gotO.PaymentID)
	assert.Equal(t, p.ID, *gotO.PaymentID)
	assert.True(t, gotO.TotalAmount.Equal(o.TotalAmount))
}

func TestPurgeLeavesOtherIdentitiesAlone(t *testing.T) {
	db := openTestDB(t)
	methods := NewPaymentMethodRepository(db)
	identity := NewIdentityRepository(db)

	mine := newMethod("user-1", true)
	theirs := newMethod("user-2", true)
	require.NoError(t, methods.Create(mine))
	require.NoError(t, methods.Create(theirs))

	require.NoError(t, identity.Purge("user-1"))

	kept, err := methods.ListActive("user-2")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.True(t, kept[0].IsDefault)
}
