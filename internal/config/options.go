package config

import (
	"github.com/ironsheep/name-list-tools/internal/imaging"
	"github.com/ironsheep/name-list-tools/internal/ocr"
	"github.com/ironsheep/name-list-tools/internal/search"
)

// OCROptions returns the recognizer settings.
func (c *Config) OCROptions() ocr.Options {
	opts := ocr.DefaultOptions()
	opts.Language = c.OCR.Language
	opts.PageSegMode = c.OCR.PageSegMode
	opts.TessdataPrefix = c.OCR.TessdataPrefix
	return opts
}

// PreprocessOptions returns the image preparation settings.
func (c *Config) PreprocessOptions() imaging.PreprocessOptions {
	return imaging.PreprocessOptions{
		Scale:    c.OCR.Scale,
		Contrast: c.OCR.Contrast,
		Region:   c.OCR.Region,
	}
}

// SearchOptions returns the browser settings.
func (c *Config) SearchOptions() search.Options {
	opts := search.DefaultOptions()
	opts.URL = c.Search.URL
	opts.Headless = c.Search.Headless
	opts.UserAgent = c.Search.UserAgent
	opts.ResultLimit = c.Search.ResultLimit
	opts.Timeout = c.Search.Timeout
	opts.SettleMin, opts.SettleMax = c.Search.SettleMin, c.Search.SettleMax
	opts.ResultsMin, opts.ResultsMax = c.Search.ResultsMin, c.Search.ResultsMax
	return opts
}
