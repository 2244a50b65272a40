package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestThumbnailKeepsAspectRatio(t *testing.T) {
	p := NewProcessor(80)

	out, err := p.Thumbnail(pngOf(t, 1000, 500), SizeThumbnail)
	require.NoError(t, err)

	w, h, err := Dimensions(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 160, h)
}

func TestThumbnailDoesNotUpscale(t *testing.T) {
	p := NewProcessor(0)

	out, err := p.Thumbnail(pngOf(t, 40, 30), SizeThumbnail)
	require.NoError(t, err)

	w, h, err := Dimensions(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
}

func TestThumbnailRejectsNonImages(t *testing.T) {
	_, err := NewProcessor(85).Thumbnail(strings.NewReader("definitely not an image"), SizeThumbnail)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestFitDimensions(t *testing.T) {
	w, h := FitDimensions(3000, 10, 320, 320)
	assert.Equal(t, 320, w)
	assert.Equal(t, 1, h)

	w, h = FitDimensions(0, 10, 320, 320)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
