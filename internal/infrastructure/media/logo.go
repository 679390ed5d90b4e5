// Package media normalizes the images uploaded as business branding.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	LogoMaxWidth  = 400
	LogoMaxHeight = 400

	pngDataURLPrefix = "data:image/png;base64,"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// NormalizeLogo decodes an uploaded image, fits it in the logo box keeping
// its aspect ratio and returns it as a PNG data URL.
func NormalizeLogo(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	b := img.Bounds()
	if b.Dx() > LogoMaxWidth || b.Dy() > LogoMaxHeight {
		img = imaging.Fit(img, LogoMaxWidth, LogoMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL returns the raw bytes of a base64 data URL.
func DecodeDataURL(dataURL string) ([]byte, error) {
	i := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:") || i < 0 {
		return nil, ErrUnsupportedImage
	}
	return base64.StdEncoding.DecodeString(dataURL[i+len(";base64,"):])
}
