// Package bitmap holds the immutable source image of the editor together
// with the loader and the bilinear resampler used to derive scaled copies.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrInvalidDimension is returned by Resample when a target size is not
// strictly positive.
var ErrInvalidDimension = errors.New("bitmap: invalid dimension")

// LoadError reports a failure to obtain a Bitmap from a file or resource.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("bitmap: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Bitmap is a decoded RGBA image. The pixel buffer is never modified after
// construction; callers must not write through Image.
type Bitmap struct {
	img *image.RGBA
}

// FromImage copies img into a new Bitmap whose bounds start at the origin.
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Bitmap{img: rgba}
}

// Decode reads an image in any registered format from r. The source name
// is only used in the returned LoadError.
func Decode(source string, r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	bm := FromImage(img)
	if bm.Width() == 0 || bm.Height() == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("empty image %dx%d", bm.Width(), bm.Height())}
	}
	return bm, nil
}

// Load decodes the image file at path.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Decode(path, f)
}

func (b *Bitmap) Width() int  { return b.img.Rect.Dx() }
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

// Image exposes the pixels for display. It must be treated as read-only.
func (b *Bitmap) Image() image.Image { return b.img }

// Resample returns src scaled to width x height with bilinear
// interpolation. src is left untouched.
func Resample(src *Bitmap, width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src.img, src.img.Bounds(), xdraw.Src, nil)
	return &Bitmap{img: dst}, nil
}
