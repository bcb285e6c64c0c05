package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"forge/internal/database"
	"forge/internal/models"
	"forge/internal/repository"
	"forge/pkg/stripeclient"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStripe struct {
	detached    []string
	detachErr   error
	checkoutErr error
}

func (f *fakeStripe) EnsureCustomer(ctx context.Context, email, name string) (string, error) {
	return "cus_test", nil
}

func (f *fakeStripe) DetachPaymentMethod(ctx context.Context, id string) error {
	f.detached = append(f.detached, id)
	return f.detachErr
}

func (f *fakeStripe) CreateCheckoutSession(ctx context.Context, p stripeclient.CheckoutParams) (string, string, error) {
	if f.checkoutErr != nil {
		return "", "", f.checkoutErr
	}
	return "cs_test_1", "https://checkout.stripe.test/cs_test_1", nil
}

func openHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// asUser is a stand-in for AuthRequired in tests.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", userID+"@example.com")
		c.Next()
	}
}

func newMethodRouter(t *testing.T, db *gorm.DB, stripe stripeclient.Client, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewPaymentMethodHandler(repository.NewPaymentMethodRepository(db), stripe)
	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/payment-methods", h.List)
	r.POST("/payment-methods", h.Add)
	r.PUT("/payment-methods/:id/default", h.SetDefault)
	r.DELETE("/payment-methods/:id", h.Deactivate)
	return r
}

func seedMethod(t *testing.T, db *gorm.DB, userID string, isDefault bool) *models.PaymentMethod {
	t.Helper()
	m := &models.PaymentMethod{
		UserID:                userID,
		StripePaymentMethodID: "pm_" + uuid.NewString(),
		PaymentType:           "card",
		CardBrand:             "Visa",
		CardLast4:             "4242",
		IsDefault:             isDefault,
	}
	require.NoError(t, repository.NewPaymentMethodRepository(db).Create(m))
	return m
}

func TestDeactivateProceedsWhenDetachFails(t *testing.T) {
	db := openHandlerTestDB(t)
	stripe := &fakeStripe{detachErr: errors.New("processor unreachable")}
	r := newMethodRouter(t, db, stripe, "user-1")

	m := seedMethod(t, db, "user-1", false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/payment-methods/"+m.ID.String(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "removed", resp["status"])
	assert.NotEmpty(t, resp["warning"])
	assert.Equal(t, []string{m.StripePaymentMethodID}, stripe.detached)

	var got models.PaymentMethod
	require.NoError(t, db.First(&got, "id = ?", m.ID).Error)
	assert.False(t, got.IsActive)
}

func TestDeactivateForeignMethodIsNotFound(t *testing.T) {
	db := openHandlerTestDB(t)
	stripe := &fakeStripe{}
	r := newMethodRouter(t, db, stripe, "user-1")

	theirs := seedMethod(t, db, "user-2", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/payment-methods/"+theirs.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, stripe.detached, "no detach for a method we do not own")

	var got models.PaymentMethod
	require.NoError(t, db.First(&got, "id = ?", theirs.ID).Error)
	assert.True(t, got.IsActive)
}

func TestAddDefaultReplacesExistingDefault(t *testing.T) {
	db := openHandlerTestDB(t)
	r := newMethodRouter(t, db, &fakeStripe{}, "user-1")

	seedMethod(t, db, "user-1", true)

	body, _ := json.Marshal(map[string]interface{}{
		"stripe_payment_method_id": "pm_new",
		"card_brand":               "Mastercard",
		"card_last4":               "4444",
		"is_default":               true,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment-methods", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.PaymentMethod{}).
		Where("user_id = ? AND is_default = ?", "user-1", true).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-methods", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		PaymentMethods []struct {
			models.PaymentMethod
			Label string `json:"label"`
		} `json:"payment_methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.PaymentMethods, 2)
	assert.Equal(t, "pm_new", listResp.PaymentMethods[0].StripePaymentMethodID)
	assert.True(t, listResp.PaymentMethods[0].IsDefault)
	assert.Equal(t, "Mastercard ending in 4444", listResp.PaymentMethods[0].Label)
	assert.Equal(t, "Visa ending in 4242", listResp.PaymentMethods[1].Label)
}

func TestSetDefaultUnknownIDIsNotFound(t *testing.T) {
	db := openHandlerTestDB(t)
	r := newMethodRouter(t, db, &fakeStripe{}, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/payment-methods/"+uuid.NewString()+"/default", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
