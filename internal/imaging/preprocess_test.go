package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"testing"
)

func TestPreprocess_Defaults(t *testing.T) {
	src := createStripedImage(40, 20, 80, 170)

	out, err := Preprocess(src, DefaultPreprocessOptions())
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	bounds := out.Bounds()
	if bounds.Dx() != 80 || bounds.Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want 80x40", bounds.Dx(), bounds.Dy())
	}
	if bounds.Min != (image.Point{}) {
		t.Errorf("bounds should start at origin, got %v", bounds.Min)
	}
}

func TestPreprocess_Region(t *testing.T) {
	src := createStripedImage(40, 20, 80, 170)

	out, err := Preprocess(src, PreprocessOptions{Scale: 2, Contrast: 1, Region: "left-half"})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", b.Dx(), b.Dy())
	}
}

func TestPreprocess_Grayscale(t *testing.T) {
	src := createInMemoryImage(10, 10, color.RGBA{200, 30, 90, 255})

	out, err := Preprocess(src, PreprocessOptions{Scale: 1, Contrast: 1})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	r, g, b, _ := out.At(5, 5).RGBA()
	if r != g || g != b {
		t.Errorf("pixel is not gray: r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestPreprocess_DoesNotModifyInput(t *testing.T) {
	src := createInMemoryImage(4, 4, color.RGBA{200, 30, 90, 255})

	if _, err := Preprocess(src, DefaultPreprocessOptions()); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	if got := src.RGBAAt(1, 1); got != (color.RGBA{200, 30, 90, 255}) {
		t.Errorf("input modified: got %v", got)
	}
}

func TestPreprocess_InvalidOptions(t *testing.T) {
	src := createInMemoryImage(10, 10, color.White)

	tests := []struct {
		name string
		img  image.Image
		opts PreprocessOptions
	}{
		{"nil image", nil, DefaultPreprocessOptions()},
		{"zero scale", src, PreprocessOptions{Scale: 0, Contrast: 2}},
		{"negative scale", src, PreprocessOptions{Scale: -1, Contrast: 2}},
		{"negative contrast", src, PreprocessOptions{Scale: 2, Contrast: -0.5}},
		{"collapsing scale", src, PreprocessOptions{Scale: 0.01, Contrast: 1}},
		{"unknown region", src, PreprocessOptions{Scale: 1, Contrast: 1, Region: "middle"}},
		{"region outside image", src, PreprocessOptions{Scale: 1, Contrast: 1, Region: "0,0,20,20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Preprocess(tt.img, tt.opts); err == nil {
				t.Error("Preprocess should fail")
			}
		})
	}
}

func TestEnhanceContrast_SpreadsAroundMean(t *testing.T) {
	// Half 100, half 150: mean luminance 125.
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := uint8(100)
			if x >= 5 {
				v = 150
			}
			src.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}

	out := EnhanceContrast(src, 2)

	dark := color.RGBAModel.Convert(out.At(0, 0)).(color.RGBA)
	light := color.RGBAModel.Convert(out.At(9, 0)).(color.RGBA)

	if dark.R != 75 {
		t.Errorf("dark pixel: got %d, want 75", dark.R)
	}
	if light.R != 175 {
		t.Errorf("light pixel: got %d, want 175", light.R)
	}
}

func TestEnhanceContrast_Clamps(t *testing.T) {
	src := createStripedImage(16, 4, 10, 245)

	out := EnhanceContrast(src, 3)

	dark := color.RGBAModel.Convert(out.At(0, 0)).(color.RGBA)
	light := color.RGBAModel.Convert(out.At(4, 0)).(color.RGBA)
	if dark.R != 0 {
		t.Errorf("dark pixel: got %d, want 0", dark.R)
	}
	if light.R != 255 {
		t.Errorf("light pixel: got %d, want 255", light.R)
	}
}

func TestEnhanceContrast_ZeroFactorFlattens(t *testing.T) {
	src := createStripedImage(16, 4, 100, 200)

	out := EnhanceContrast(src, 0)

	a := color.RGBAModel.Convert(out.At(0, 0)).(color.RGBA)
	b := color.RGBAModel.Convert(out.At(4, 0)).(color.RGBA)
	if a != b {
		t.Errorf("expected flat image, got %v and %v", a, b)
	}
	if a.R != 150 {
		t.Errorf("flat level: got %d, want 150", a.R)
	}
}

func TestMeanLuminance(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want float64
	}{
		{"white", createInMemoryImage(8, 8, color.White), 255},
		{"black", createInMemoryImage(8, 8, color.Black), 0},
		{"stripes", createStripedImage(16, 4, 100, 200), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanLuminance(tt.img); got != tt.want {
				t.Errorf("MeanLuminance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(createInMemoryImage(5, 5, color.White))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output does not look like a PNG")
	}
}

func TestPreview(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "preview.png", createStripedImage(30, 10, 60, 190))

	result, err := Preview(path, DefaultPreprocessOptions())
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	if result.Width != 60 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 60x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestPreview_MissingFile(t *testing.T) {
	if _, err := Preview("/nonexistent/page.png", DefaultPreprocessOptions()); err == nil {
		t.Error("Preview should fail for missing file")
	}
}
