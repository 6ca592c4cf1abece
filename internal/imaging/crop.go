package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region is a pixel rectangle. X2 and Y2 are exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// RegionNames lists the names accepted by NamedRegion.
var RegionNames = []string{
	"full",
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// NamedRegion returns the region of bounds called name. Two-column list
// scans are usually read as "left-half" and "right-half".
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	x0, y0 := bounds.Min.X, bounds.Min.Y
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := x0+w/2, y0+h/2
	x1, y1 := bounds.Max.X, bounds.Max.Y

	switch name {
	case "full":
		return Region{x0, y0, x1, y1}, nil
	case "top-left":
		return Region{x0, y0, midX, midY}, nil
	case "top-right":
		return Region{midX, y0, x1, midY}, nil
	case "bottom-left":
		return Region{x0, midY, midX, y1}, nil
	case "bottom-right":
		return Region{midX, midY, x1, y1}, nil
	case "top-half":
		return Region{x0, y0, x1, midY}, nil
	case "bottom-half":
		return Region{x0, midY, x1, y1}, nil
	case "left-half":
		return Region{x0, y0, midX, y1}, nil
	case "right-half":
		return Region{midX, y0, x1, y1}, nil
	case "center":
		// Center 50% of the image
		qW, qH := w/4, h/4
		return Region{x0 + qW, y0 + qH, x1 - qW, y1 - qH}, nil
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}
}

// ResolveRegion interprets spec against bounds. spec is either a name from
// RegionNames or four comma separated coordinates "x1,y1,x2,y2". An empty
// spec selects the whole image.
func ResolveRegion(bounds image.Rectangle, spec string) (Region, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return NamedRegion(bounds, "full")
	}
	if !strings.Contains(spec, ",") {
		return NamedRegion(bounds, spec)
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("region %q: want x1,y1,x2,y2", spec)
	}
	var coords [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("region %q: %w", spec, err)
		}
		coords[i] = v
	}
	return Region{coords[0], coords[1], coords[2], coords[3]}, nil
}

// Crop extracts r from img. The result has bounds starting at (0,0).
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()

	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, r.Rect()), nil
}
