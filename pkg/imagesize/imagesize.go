package imagesize

// Package imagesize reads the dimensions of dataset images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadConfig returns the width and height of an image, reading only the file header
func ReadConfig(filename string) (width, height int, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	conf, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("Failed to read image header of %v: %w", filename, err)
	}
	return conf.Width, conf.Height, nil
}

// Decode decodes the entire image, and returns its width and height.
// This is much slower than ReadConfig, but it also proves that the pixel data is intact.
func Decode(filename string) (width, height int, err error) {
	img, err := Open(filename)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Open decodes an image file
func Open(filename string) (image.Image, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to decode image %v: %w", filename, err)
	}
	return img, nil
}
