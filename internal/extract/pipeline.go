package extract

import (
	"context"
	"fmt"
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/imaging"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/names"
	"github.com/ironsheep/name-list-tools/internal/ocr"
)

// Hooks receive progress notifications. Any field may be nil.
// Indexes are 1-based.
type Hooks struct {
	// ImageStarted is called before an image is loaded.
	ImageStarted func(index, total int, path string)

	// TextRecognized is called with the raw OCR output of an image.
	TextRecognized func(index int, path, text string)

	// NamesParsed is called after an image's text has been parsed, with
	// the number of new names it contributed and the running total.
	NamesParsed func(index int, path string, added, total int)
}

// Result summarizes a successful run.
type Result struct {
	RunID  string   `json:"run_id"`
	Names  []string `json:"names"`
	Count  int      `json:"count"`
	Images int      `json:"images"`
	Output string   `json:"output,omitempty"`
}

// Pipeline wires an image loader, the preprocessing step and a recognizer.
type Pipeline struct {
	load       func(path string) (image.Image, error)
	recognizer ocr.Recognizer
	preprocess imaging.PreprocessOptions
	logger     *zap.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLoader replaces the image loader (imaging.Load by default).
func WithLoader(load func(path string) (image.Image, error)) Option {
	return func(p *Pipeline) { p.load = load }
}

// WithPreprocess sets the preprocessing parameters.
func WithPreprocess(opts imaging.PreprocessOptions) Option {
	return func(p *Pipeline) { p.preprocess = opts }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logging.OrNop(logger) }
}

// NewPipeline returns a pipeline that recognizes text with rec.
func NewPipeline(rec ocr.Recognizer, opts ...Option) *Pipeline {
	p := &Pipeline{
		load:       imaging.Load,
		recognizer: rec,
		preprocess: imaging.DefaultPreprocessOptions(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Names processes paths in order and returns the accumulated name list.
//
// The context is only checked between images; an image already handed to
// the recognizer runs to completion.
func (p *Pipeline) Names(ctx context.Context, paths []string, hooks Hooks) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}

	list := names.NewList()
	total := len(paths)

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := i + 1

		if hooks.ImageStarted != nil {
			hooks.ImageStarted(idx, total, path)
		}

		text, err := p.recognize(ctx, path)
		if err != nil {
			return nil, err
		}

		if hooks.TextRecognized != nil {
			hooks.TextRecognized(idx, path, text)
		}

		added := list.AddText(text)
		p.logger.Debug("parsed image",
			zap.Int("index", idx),
			zap.Int("total", total),
			zap.String("path", path),
			zap.Int("added", added),
			zap.Int("names", list.Len()),
		)

		if hooks.NamesParsed != nil {
			hooks.NamesParsed(idx, path, added, list.Len())
		}
	}

	return list.Names(), nil
}

// Run extracts names from paths and writes them to output as CSV.
//
// Nothing is written when any image fails.
func (p *Pipeline) Run(ctx context.Context, paths []string, output string, hooks Hooks) (*Result, error) {
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))
	logger.Info("extraction started", zap.Int("images", len(paths)), zap.String("output", output))

	found, err := p.Names(ctx, paths, hooks)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return nil, err
	}

	if err := csvstore.Write(output, found); err != nil {
		logger.Error("failed to write csv", zap.Error(err))
		return nil, fmt.Errorf("failed to save %s: %w", output, err)
	}

	logger.Info("extraction finished", zap.Int("names", len(found)), zap.String("output", output))

	return &Result{
		RunID:  runID,
		Names:  found,
		Count:  len(found),
		Images: len(paths),
		Output: output,
	}, nil
}

// RecognizeImage loads, preprocesses and recognizes a single image and
// returns the raw text.
func (p *Pipeline) RecognizeImage(ctx context.Context, path string) (string, error) {
	return p.recognize(ctx, path)
}

func (p *Pipeline) recognize(ctx context.Context, path string) (string, error) {
	img, err := p.load(path)
	if err != nil {
		return "", &ImageLoadError{Path: path, Err: err}
	}

	prepared, err := imaging.Preprocess(img, p.preprocess)
	if err != nil {
		return "", &PreprocessError{Path: path, Err: err}
	}

	text, err := p.recognizer.Recognize(ctx, prepared)
	if err != nil {
		return "", &RecognitionError{Path: path, Err: err}
	}
	return text, nil
}
