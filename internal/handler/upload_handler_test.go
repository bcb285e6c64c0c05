package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudinary struct {
	deleted   []string
	deleteErr error
}

func (f *fakeCloudinary) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	return "https://res.cloudinary.com/demo/image/upload/" + folder + "/" + publicID + ".jpg", nil
}

func (f *fakeCloudinary) DeleteByURL(ctx context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func newUploadRouter(cloud *fakeCloudinary) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(cloud)
	r := gin.New()
	r.POST("/upload/image", h.UploadImage)
	r.DELETE("/upload/image", h.DeleteImage)
	return r
}

func TestDeleteImageRemovesByURL(t *testing.T) {
	cloud := &fakeCloudinary{}
	r := newUploadRouter(cloud)

	body := []byte(`{"url": "https://res.cloudinary.com/demo/image/upload/forge/media_1.jpg"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/upload/image", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"https://res.cloudinary.com/demo/image/upload/forge/media_1.jpg"}, cloud.deleted)
}

func TestDeleteImageRequiresURL(t *testing.T) {
	r := newUploadRouter(&fakeCloudinary{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/upload/image", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteImageReportsProviderFailure(t *testing.T) {
	r := newUploadRouter(&fakeCloudinary{deleteErr: errors.New("provider down")})

	body := []byte(`{"url": "https://res.cloudinary.com/demo/image/upload/forge/media_1.jpg"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/upload/image", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
