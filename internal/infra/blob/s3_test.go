package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tours360/tourgraph/internal/config"
)

func TestS3Deps_URLRoundTrip(t *testing.T) {
	u := &S3Deps{Bucket: "tour-images", PublicURL: "https://cdn.example.com/tour-images"}

	url := u.URLFor("/p1/gallery/a.jpg")
	assert.Equal(t, "https://cdn.example.com/tour-images/p1/gallery/a.jpg", url)

	key, ok := u.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "p1/gallery/a.jpg", key)

	_, ok = u.KeyFromURL("https://pannellum.org/images/alma.jpg")
	assert.False(t, ok)

	_, ok = u.KeyFromURL("https://cdn.example.com/tour-images/")
	assert.False(t, ok)
}

func TestS3Deps_DeleteByURLIgnoresForeignURLs(t *testing.T) {
	u := &S3Deps{Bucket: "tour-images", PublicURL: "https://cdn.example.com/tour-images"}
	// Client is nil: a foreign URL must not reach it.
	assert.NoError(t, u.DeleteByURL(context.Background(), "https://elsewhere.example.com/x.jpg"))
}

func TestNewS3_DerivesPublicURL(t *testing.T) {
	cfg := &config.Config{S3: config.S3Cfg{
		Endpoint:  "http://127.0.0.1:9000/",
		Region:    "auto",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "tour-images",
	}}

	u, err := NewS3(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/tour-images", u.PublicURL)
	assert.NotNil(t, u.Uploader)
}
