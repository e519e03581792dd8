package main

import (
	"bytes"
	_ "embed"

	"github.com/ha1tch/simpleedit/bitmap"
)

const bundledImageName = "assets/main-edit-img.png"

//go:embed assets/main-edit-img.png
var bundledImage []byte

// loadImage returns the picture given with -image, or the bundled one.
func loadImage(path string) (*bitmap.Bitmap, string, error) {
	if path != "" {
		bm, err := bitmap.Load(path)
		return bm, path, err
	}
	bm, err := bitmap.Decode(bundledImageName, bytes.NewReader(bundledImage))
	return bm, bundledImageName, err
}
