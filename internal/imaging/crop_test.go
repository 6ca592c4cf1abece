package imaging

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestNamedRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)

	tests := []struct {
		name string
		want Region
	}{
		{"full", Region{0, 0, 100, 80}},
		{"top-left", Region{0, 0, 50, 40}},
		{"top-right", Region{50, 0, 100, 40}},
		{"bottom-left", Region{0, 40, 50, 80}},
		{"bottom-right", Region{50, 40, 100, 80}},
		{"top-half", Region{0, 0, 100, 40}},
		{"bottom-half", Region{0, 40, 100, 80}},
		{"left-half", Region{0, 0, 50, 80}},
		{"right-half", Region{50, 0, 100, 80}},
		{"center", Region{25, 20, 75, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NamedRegion(bounds, tt.name)
			if err != nil {
				t.Fatalf("NamedRegion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if len(tests) != len(RegionNames) {
		t.Errorf("RegionNames has %d entries, test covers %d", len(RegionNames), len(tests))
	}
}

func TestNamedRegion_OffsetBounds(t *testing.T) {
	got, err := NamedRegion(image.Rect(10, 20, 110, 100), "right-half")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Region{60, 20, 110, 100}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNamedRegion_Unknown(t *testing.T) {
	if _, err := NamedRegion(image.Rect(0, 0, 10, 10), "middle"); err == nil {
		t.Error("expected error for unknown region")
	}
}

func TestResolveRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)

	tests := []struct {
		spec    string
		want    Region
		wantErr string
	}{
		{"", Region{0, 0, 100, 80}, ""},
		{"  left-half ", Region{0, 0, 50, 80}, ""},
		{"10, 5, 90,70", Region{10, 5, 90, 70}, ""},
		{"1,2,3", Region{}, "want x1,y1,x2,y2"},
		{"1,2,x,4", Region{}, "invalid syntax"},
		{"nowhere", Region{}, "unknown region"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ResolveRegion(bounds, tt.spec)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error: got %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})
	img.Set(60, 10, color.RGBA{0, 0, 255, 255})

	out, err := Crop(img, Region{50, 0, 100, 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	b := out.Bounds()
	if b.Min != (image.Point{}) || b.Dx() != 50 || b.Dy() != 50 {
		t.Fatalf("bounds: got %v, want (0,0)-(50,50)", b)
	}
	if _, _, blue, _ := out.At(10, 10).RGBA(); blue>>8 != 255 {
		t.Errorf("pixel (60,10) should land at (10,10) after cropping")
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	tests := []struct {
		name string
		r    Region
	}{
		{"outside bounds", Region{0, 0, 101, 50}},
		{"negative origin", Region{-1, 0, 50, 50}},
		{"inverted x", Region{50, 0, 10, 50}},
		{"empty", Region{10, 10, 10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.r); err == nil {
				t.Error("expected error")
			}
		})
	}
}
