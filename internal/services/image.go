package services

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	_ "image/jpeg"
	_ "image/png"
)

// ImageService validates and normalizes user-supplied images (proof of
// payment, back-office uploads) before they are sent to the upstream
// upload endpoint
type ImageService struct {
	maxDimension int
	maxBytes     int64
	quality      int
}

// NewImageService creates an image service with sensible bounds for
// proof-of-payment photos
func NewImageService() *ImageService {
	return &ImageService{
		maxDimension: 1600,
		maxBytes:     10 << 20, // 10 MiB
		quality:      85,
	}
}

var allowedImageFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
}

// PrepareProofImage decodes, validates and downscales an image, returning
// the encoded bytes ready for upload together with a generated filename.
// Oversized photos (phone camera shots of a bank transfer receipt) are fit
// into the max dimension; smaller images pass through unscaled.
func (s *ImageService) PrepareProofImage(reader io.Reader, filename string) (io.Reader, string, error) {
	data, err := io.ReadAll(io.LimitReader(reader, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}

	if int64(len(data)) > s.maxBytes {
		return nil, "", fmt.Errorf("image exceeds the %d MB size limit", s.maxBytes>>20)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	if !allowedImageFormats[format] {
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.maxDimension || bounds.Dy() > s.maxDimension {
		img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	encodeFormat := imaging.JPEG
	ext := ".jpg"
	if format == "png" {
		encodeFormat = imaging.PNG
		ext = ".png"
	}

	if err := imaging.Encode(&buf, img, encodeFormat, imaging.JPEGQuality(s.quality)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return &buf, generateImageName(filename, ext), nil
}

// generateImageName builds a unique upload name, keeping a sanitized stem of
// the original filename for traceability
func generateImageName(filename, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, stem)
	if stem == "" {
		stem = "image"
	}

	return fmt.Sprintf("%s-%s%s", stem, uuid.New().String()[:8], ext)
}
