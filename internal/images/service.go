package images

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/stridewell/storefront-backend/pkg/config"
	"github.com/stridewell/storefront-backend/pkg/logger"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/webp"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Service normalizes uploaded product images and writes them under the
// configured upload directory.
type Service struct {
	cfg  config.MediaConfig
	logg *logger.Logger
}

// NewService constructs an image service instance.
func NewService(cfg config.MediaConfig, logg *logger.Logger) *Service {
	return &Service{cfg: cfg, logg: logg}
}

// Save processes one upload and returns the generated filename. Any
// failure is logged and reported as an empty filename; callers continue
// without an image.
func (s *Service) Save(ctx context.Context, filename string, r io.Reader) string {
	stored, err := s.process(filename, r)
	if err != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"filename": filename,
			"reason":   err.Error(),
		})
		s.logg.Warn(ctx, "image upload rejected")
		return ""
	}
	return stored
}

// PublicURL returns the path clients use to fetch a stored image.
func (s *Service) PublicURL(filename string) string {
	return path.Join(s.cfg.PublicPrefix, filename)
}

func (s *Service) process(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("extension %q not allowed", ext)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = flatten(img)
	img = s.downscale(img)

	// There is no webp encoder in the Go ecosystem we depend on, so webp
	// uploads are re-encoded as jpeg.
	outExt := ext
	if outExt == ".webp" {
		outExt = ".jpg"
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	stored := uuid.NewString() + outExt
	target := filepath.Join(s.cfg.UploadDir, stored)

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if outExt == ".png" {
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		err = encoder.Encode(file, img)
	} else {
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: s.cfg.JPEGQuality})
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(target)
		return "", fmt.Errorf("encode image: %w", err)
	}
	return stored, nil
}

// flatten composites the image over a white background so alpha channels
// survive the jpeg encode.
func flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(flat, flat.Bounds(), img, bounds.Min, xdraw.Over)
	return flat
}

func (s *Service) downscale(img image.Image) image.Image {
	max := s.cfg.MaxDimension
	if max < 1 {
		return img
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= max && height <= max {
		return img
	}

	ratio := float64(max) / float64(width)
	if height > width {
		ratio = float64(max) / float64(height)
	}
	newWidth := int(float64(width) * ratio)
	newHeight := int(float64(height) * ratio)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}
