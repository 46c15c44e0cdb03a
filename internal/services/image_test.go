package services

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestImageService_PrepareProofImage(t *testing.T) {
	svc := NewImageService()

	prepared, name, err := svc.PrepareProofImage(bytes.NewReader(encodePNG(t, 8, 8)), "receipt.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "receipt-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := io.ReadAll(prepared)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestImageService_PrepareProofImage_DownscalesOversized(t *testing.T) {
	svc := NewImageService()

	prepared, _, err := svc.PrepareProofImage(bytes.NewReader(encodePNG(t, 3200, 400)), "huge.png")
	require.NoError(t, err)

	img, _, err := image.Decode(prepared)
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 1600)
	assert.LessOrEqual(t, img.Bounds().Dy(), 1600)
}

func TestImageService_PrepareProofImage_RejectsNonImage(t *testing.T) {
	svc := NewImageService()

	_, _, err := svc.PrepareProofImage(strings.NewReader("definitely not an image"), "junk.bin")
	assert.Error(t, err)
}

func TestImageService_PrepareProofImage_SanitizesFilename(t *testing.T) {
	svc := NewImageService()

	_, name, err := svc.PrepareProofImage(bytes.NewReader(encodePNG(t, 4, 4)), "../../etc pass wd!.png")
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, " ")
}
