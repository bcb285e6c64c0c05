package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/forge/media_1.jpg", "forge/media_1"},
		{"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto/forge/media_2.png", "forge/media_2"},
		{"https://res.cloudinary.com/demo/image/upload/forge/media_3.webp", "forge/media_3"},
		{"https://res.cloudinary.com/demo/image/upload/media_4", "media_4"},
		{"https://example.com/not-cloudinary.jpg", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, publicIDFromURL(tc.url), tc.url)
	}
}
