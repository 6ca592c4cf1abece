package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/name-list-tools/internal/imaging"
)

// Default recognition settings.
const (
	DefaultLanguage    = "eng"
	DefaultPageSegMode = int(gosseract.PSM_SINGLE_BLOCK)
)

// Recognizer turns a prepared page image into a single block of text.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Options configures a Tesseract recognizer.
type Options struct {
	// Language is a Tesseract language code, or several joined with "+".
	Language string

	// PageSegMode is the Tesseract page segmentation mode (0-13).
	PageSegMode int

	// TessdataPrefix overrides the directory Tesseract loads language data
	// from. Empty uses the engine default (TESSDATA_PREFIX).
	TessdataPrefix string

	// Variables are passed to the engine verbatim, e.g.
	// "tessedit_char_blacklist".
	Variables map[string]string
}

// DefaultOptions returns the settings used for list pages.
func DefaultOptions() Options {
	return Options{
		Language:    DefaultLanguage,
		PageSegMode: DefaultPageSegMode,
	}
}

// Tesseract implements Recognizer with a fresh gosseract client per page.
type Tesseract struct {
	opts          Options
	clientFactory func() *gosseract.Client
}

// NewTesseract constructs a Tesseract-backed recognizer.
func NewTesseract(opts Options) *Tesseract {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	return &Tesseract{opts: opts, clientFactory: gosseract.NewClient}
}

// Options returns the settings the recognizer was built with.
func (t *Tesseract) Options() Options {
	return t.opts
}

// Recognize performs OCR on an in-memory image and returns all recognized
// text with its original line breaks.
//
// The image is PNG-encoded and handed to Tesseract as bytes; no temporary
// files are created.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("nil image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	client := t.clientFactory()
	defer client.Close()

	if err := t.configure(client); err != nil {
		return "", err
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

func (t *Tesseract) configure(client *gosseract.Client) error {
	if t.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.opts.TessdataPrefix); err != nil {
			return fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(strings.Split(t.opts.Language, "+")...); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PageSegMode(t.opts.PageSegMode)); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	for k, v := range t.opts.Variables {
		if err := client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return fmt.Errorf("failed to set variable %s: %w", k, err)
		}
	}
	return nil
}

// ValidatePageSegMode reports an error for modes Tesseract does not define.
func ValidatePageSegMode(mode int) error {
	if mode < int(gosseract.PSM_OSD_ONLY) || mode > int(gosseract.PSM_RAW_LINE) {
		return fmt.Errorf("invalid page segmentation mode %d: must be 0-13", mode)
	}
	return nil
}
