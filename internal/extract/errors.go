package extract

import (
	"errors"
	"fmt"
)

// ErrNoImages is returned when a run is started without any image paths.
var ErrNoImages = errors.New("please select at least one image")

// ImageLoadError reports an image that could not be opened or decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// PreprocessError reports an image that could not be prepared for OCR.
type PreprocessError struct {
	Path string
	Err  error
}

func (e *PreprocessError) Error() string {
	return fmt.Sprintf("preprocess %s: %v", e.Path, e.Err)
}

func (e *PreprocessError) Unwrap() error {
	return e.Err
}

// RecognitionError reports an OCR failure for one image.
type RecognitionError struct {
	Path string
	Err  error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognize %s: %v", e.Path, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}
