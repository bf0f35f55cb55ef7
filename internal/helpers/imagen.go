package helpers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/beego/beego/v2/core/logs"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultCVMaxDimension = 1600
	DefaultCVQuality      = 80
)

// ImageDataURL reduce la imagen a maxDimension (lado mayor) y la codifica como
// data:image/jpeg;base64,... para el endpoint parse-cv.
// Valores <= 0 usan DefaultCVMaxDimension / DefaultCVQuality.
func ImageDataURL(r io.Reader, maxDimension, quality int) (string, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultCVMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultCVQuality
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decodificando imagen (formato: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), maxDimension)
	logs.Debug("imagen CV %s %dx%d -> %dx%d", format, bounds.Dx(), bounds.Dy(), width, height)

	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("codificando imagen: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scaledSize mantiene la proporción; nunca agranda.
func scaledSize(width, height, maxDimension int) (int, int) {
	if width > height {
		if width > maxDimension {
			return maxDimension, max(1, height*maxDimension/width)
		}
		return width, height
	}
	if height > maxDimension {
		return max(1, width*maxDimension/height), maxDimension
	}
	return width, height
}
