package cloudinary

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client wraps Cloudinary image upload for admin-managed media (portfolio
// screenshots, note illustrations).
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	DeleteByURL(ctx context.Context, url string) error
}

// Optimized delivery params for frontend loading.
const (
	imageEager = "q_auto,f_auto,w_1200,c_limit"
	ImageWidth = 1200
)

type client struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &client{cld: cld, cloudName: cloudName}, nil
}

func (c *client) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		Transformation: imageEager,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

func (c *client) DeleteByURL(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return fmt.Errorf("cloudinary: cannot derive public id from %q", url)
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// publicIDFromURL strips the delivery prefix, transformation segment and
// file extension from a Cloudinary URL.
func publicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	if parts := strings.SplitN(rest, "/", 2); len(parts) == 2 && (strings.HasPrefix(parts[0], "v") || strings.Contains(parts[0], ",")) {
		rest = parts[1]
	}
	if dot := strings.LastIndex(rest, "."); dot > 0 {
		rest = rest[:dot]
	}
	return rest
}
