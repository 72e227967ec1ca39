package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
	xdraw "golang.org/x/image/draw"
)

// DecodeImage decodes a PNG, JPEG or WebP image. ext selects WebP when it is ".webp".
func DecodeImage(data []byte, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".webp") {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode webp: %w", err)
		}
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// CoverFit returns the size an image of srcW x srcH is scaled to so that it covers
// a dstW x dstH screen with its aspect ratio kept, and the offset that centers it.
func CoverFit(srcW, srcH, dstW, dstH int) (w, h, x, y int) {
	if srcW <= 0 || srcH <= 0 {
		return dstW, dstH, 0, 0
	}
	ratio := float64(srcW) / float64(srcH)
	if float64(dstW)/float64(dstH) > ratio {
		w = dstW
		h = int(float64(dstW) / ratio)
	} else {
		h = dstH
		w = int(float64(dstH) * ratio)
	}
	return w, h, (dstW - w) / 2, (dstH - h) / 2
}

// Background is a backdrop image already scaled to cover the screen
type Background struct {
	Image image.Image

	// Offset is where the top-left corner of Image lands on screen
	Offset Vec2
}

// LoadBackground reads the image at path and scales it to cover a width x height screen
func LoadBackground(path string, width, height int) (*Background, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read background %s: %w", path, err)
	}
	src, err := DecodeImage(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	return ScaleBackground(src, width, height), nil
}

// ScaleBackground resamples src to cover a width x height screen
func ScaleBackground(src image.Image, width, height int) *Background {
	b := src.Bounds()
	w, h, x, y := CoverFit(b.Dx(), b.Dy(), width, height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return &Background{Image: dst, Offset: Vec2{float64(x), float64(y)}}
}
