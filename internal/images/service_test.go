package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stridewell/storefront-backend/pkg/config"
	"github.com/stridewell/storefront-backend/pkg/logger"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.MediaConfig{
		UploadDir:    dir,
		PublicPrefix: "/static/images/products",
		MaxDimension: 800,
		JPEGQuality:  85,
	}
	logg := logger.New(logger.Options{ServiceName: "images-test", Output: io.Discard})
	return NewService(cfg, logg), dir
}

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	svc, dir := newTestService(t)

	stored := svc.Save(context.Background(), "photo.gif", encodePNG(t, 10, 10))
	assert.Empty(t, stored)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsCorruptData(t *testing.T) {
	svc, dir := newTestService(t)

	stored := svc.Save(context.Background(), "photo.jpg", strings.NewReader("not an image"))
	assert.Empty(t, stored)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveDownscalesOversizedImage(t *testing.T) {
	svc, dir := newTestService(t)

	stored := svc.Save(context.Background(), "big.png", encodePNG(t, 1600, 400))
	require.NotEmpty(t, stored)
	assert.True(t, strings.HasSuffix(stored, ".png"))

	file, err := os.Open(filepath.Join(dir, stored))
	require.NoError(t, err)
	defer file.Close()

	img, format, err := image.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestSaveKeepsSmallImageDimensions(t *testing.T) {
	svc, dir := newTestService(t)

	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 120, 90))
	require.NoError(t, jpeg.Encode(&buf, src, &jpeg.Options{Quality: 90}))

	stored := svc.Save(context.Background(), "small.JPG", &buf)
	require.NotEmpty(t, stored)
	assert.True(t, strings.HasSuffix(stored, ".jpg"))

	file, err := os.Open(filepath.Join(dir, stored))
	require.NoError(t, err)
	defer file.Close()

	img, format, err := image.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestPublicURL(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, "/static/images/products/abc.jpg", svc.PublicURL("abc.jpg"))
}
