package repository

import (
	"sync"
	"testing"

	"forge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMethod(userID string, isDefault bool) *models.PaymentMethod {
	return &models.PaymentMethod{
		UserID:                userID,
		StripePaymentMethodID: "pm_" + uuid.NewString(),
		PaymentType:           "card",
		CardBrand:             "Visa",
		CardLast4:             "4242",
		IsDefault:             isDefault,
	}
}

func TestCreateAsDefaultClearsPreviousDefault(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	first := newMethod("user-1", true)
	require.NoError(t, repo.Create(first))

	second := newMethod("user-1", true)
	require.NoError(t, repo.Create(second))

	n, err := repo.CountDefaults("user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	methods, err := repo.ListActive("user-1")
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, second.ID, methods[0].ID, "new default should list first")
	assert.True(t, methods[0].IsDefault)
	assert.False(t, methods[1].IsDefault)
}

func TestSetDefaultMovesFlag(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	a := newMethod("user-1", true)
	b := newMethod("user-1", false)
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	require.NoError(t, repo.SetDefault("user-1", b.ID))

	got, err := repo.GetByIDForUser("user-1", a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	got, err = repo.GetByIDForUser("user-1", b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	// Idempotent on repeat.
	require.NoError(t, repo.SetDefault("user-1", b.ID))
	n, err := repo.CountDefaults("user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSetDefaultNotOwnedIsNotFound(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	mine := newMethod("user-1", true)
	theirs := newMethod("user-2", true)
	require.NoError(t, repo.Create(mine))
	require.NoError(t, repo.Create(theirs))

	err := repo.SetDefault("user-1", theirs.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// No row was touched.
	got, err := repo.GetByIDForUser("user-2", theirs.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	got, err = repo.GetByIDForUser("user-1", mine.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestDeactivateNotOwnedIsNotFound(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	theirs := newMethod("user-2", false)
	require.NoError(t, repo.Create(theirs))

	err := repo.Deactivate("user-1", theirs.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByIDForUser("user-2", theirs.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestDeactivateHidesMethodButKeepsRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentMethodRepository(db)

	m := newMethod("user-1", true)
	require.NoError(t, repo.Create(m))
	require.NoError(t, repo.Deactivate("user-1", m.ID))

	methods, err := repo.ListActive("user-1")
	require.NoError(t, err)
	assert.Empty(t, methods)

	// Row retained for history, default flag cleared.
	var kept models.PaymentMethod
	require.NoError(t, db.First(&kept, "id = ?", m.ID).Error)
	assert.False(t, kept.IsActive)
	assert.False(t, kept.IsDefault)
}

func TestListActiveOrdersDefaultFirstThenNewest(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	oldest := newMethod("user-1", false)
	require.NoError(t, repo.Create(oldest))
	def := newMethod("user-1", true)
	require.NoError(t, repo.Create(def))
	newest := newMethod("user-1", false)
	require.NoError(t, repo.Create(newest))
	inactive := newMethod("user-1", false)
	require.NoError(t, repo.Create(inactive))
	require.NoError(t, repo.Deactivate("user-1", inactive.ID))

	methods, err := repo.ListActive("user-1")
	require.NoError(t, err)
	require.Len(t, methods, 3)
	assert.Equal(t, def.ID, methods[0].ID)
	for _, m := range methods {
		assert.True(t, m.IsActive)
		assert.NotEqual(t, inactive.ID, m.ID)
	}
}

func TestDefaultInvariantUnderConcurrentSetDefault(t *testing.T) {
	repo := NewPaymentMethodRepository(openTestDB(t))

	a := newMethod("user-1", true)
	b := newMethod("user-1", false)
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	targets := []uuid.UUID{a.ID, b.ID}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Contending writers may get a busy error from sqlite;
			// only the invariant matters here.
			_ = repo.SetDefault("user-1", targets[i%2])
		}(i)
	}
	wg.Wait()

	n, err := repo.CountDefaults("user-1")
	require.NoError(t, err)
	assert.LessOrEqual(t, n, int64(1))
}
