package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// Default preprocessing parameters.
const (
	DefaultScale    = 2.0
	DefaultContrast = 2.0
)

// PreprocessOptions controls the preparation of a page for OCR.
type PreprocessOptions struct {
	// Scale multiplies both dimensions. Must be > 0. 1 disables resizing.
	Scale float64

	// Contrast is the enhancement factor about the mean luminance.
	// 1 leaves the image unchanged, 0 yields a flat gray image and values
	// above 1 increase contrast.
	Contrast float64

	// Region restricts recognition to part of the page, as accepted by
	// ResolveRegion. Empty keeps the whole page.
	Region string
}

// DefaultPreprocessOptions returns the parameters used for list pages.
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		Scale:    DefaultScale,
		Contrast: DefaultContrast,
	}
}

// Preprocess crops img to opts.Region, converts it to grayscale, resizes it by opts.Scale using a
// Lanczos filter and applies contrast enhancement.
//
// The returned image has bounds starting at (0,0). The input is not
// modified.
func Preprocess(img image.Image, opts PreprocessOptions) (image.Image, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v: must be > 0", opts.Scale)
	}
	if opts.Contrast < 0 {
		return nil, fmt.Errorf("invalid contrast %v: must be >= 0", opts.Contrast)
	}

	if opts.Region != "" {
		r, err := ResolveRegion(img.Bounds(), opts.Region)
		if err != nil {
			return nil, err
		}
		if img, err = Crop(img, r); err != nil {
			return nil, err
		}
	}

	var out image.Image = imaging.Grayscale(img)

	if opts.Scale != 1 {
		b := out.Bounds()
		width := int(float64(b.Dx()) * opts.Scale)
		height := int(float64(b.Dy()) * opts.Scale)
		if width < 1 || height < 1 {
			return nil, fmt.Errorf("scale %v collapses %dx%d image", opts.Scale, b.Dx(), b.Dy())
		}
		out = imaging.Resize(out, width, height, imaging.Lanczos)
	}

	if opts.Contrast != 1 {
		out = EnhanceContrast(out, opts.Contrast)
	}

	return out, nil
}

// EnhanceContrast scales every channel's distance from the image's mean
// luminance by factor, clamping to the valid range. Alpha is preserved.
func EnhanceContrast(img image.Image, factor float64) image.Image {
	mean := MeanLuminance(img)

	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: blend(mean, c.R, factor),
			G: blend(mean, c.G, factor),
			B: blend(mean, c.B, factor),
			A: c.A,
		}
	})
}

// MeanLuminance returns the average luminance of img, rounded to the
// nearest integer level in [0, 255].
func MeanLuminance(img image.Image) float64 {
	hist := imaging.Histogram(img)

	var mean float64
	for level, share := range hist {
		mean += float64(level) * share
	}
	return math.Floor(mean + 0.5)
}

func blend(mean float64, v uint8, factor float64) uint8 {
	out := mean + factor*(float64(v)-mean)
	switch {
	case out <= 0:
		return 0
	case out >= 255:
		return 255
	default:
		return uint8(out + 0.5)
	}
}
