package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG encodes img as PNG bytes.
//
// Tesseract accepts encoded image data directly, so preprocessed pages are
// handed over this way instead of through temporary files.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// PreviewResult contains a base64 encoded rendering of a preprocessed page.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview loads path, preprocesses it with opts and returns the result as a
// base64 PNG so callers can inspect exactly what the recognizer sees.
func Preview(path string, opts PreprocessOptions) (*PreviewResult, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	prepared, err := Preprocess(img, opts)
	if err != nil {
		return nil, err
	}

	data, err := EncodePNG(prepared)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       prepared.Bounds().Dx(),
		Height:      prepared.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}
