package media

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

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeLogo_FitsLargeImages(t *testing.T) {
	url, err := NormalizeLogo(pngBytes(t, 1200, 600))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := DecodeDataURL(url)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestNormalizeLogo_KeepsSmallImages(t *testing.T) {
	url, err := NormalizeLogo(pngBytes(t, 120, 80))
	require.NoError(t, err)

	raw, err := DecodeDataURL(url)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestNormalizeLogo_RejectsGarbage(t *testing.T) {
	_, err := NormalizeLogo([]byte("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	_, err := DecodeDataURL("https://example.com/logo.png")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
