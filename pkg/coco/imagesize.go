package coco

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the supported image formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ReadImageSize returns the pixel dimensions of an image file. It reads only
// the header when it can and falls back to a full decode, then to an
// explicit WebP decode, for files the registered decoders reject.
func ReadImageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	if cfg, _, err := image.DecodeConfig(f); err == nil {
		return cfg.Width, cfg.Height, nil
	}

	// Fallback: full decode through imaging's registered decoders.
	if img, err := imaging.Open(path); err == nil {
		bounds := img.Bounds()
		return bounds.Dx(), bounds.Dy(), nil
	}

	// Fallback: explicit WebP decode.
	if _, err := f.Seek(0, 0); err == nil {
		if img, err := webp.Decode(f); err == nil {
			bounds := img.Bounds()
			return bounds.Dx(), bounds.Dy(), nil
		}
	}

	return 0, 0, fmt.Errorf("image: unknown format for %s", path)
}
