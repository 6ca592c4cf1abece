// Package ocr provides Optical Character Recognition (OCR) functionality using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) behind the
// Recognizer interface so the extraction pipeline can be exercised without a
// native engine.
//
// # Prerequisites
//
// Tesseract and its development headers must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// A non-standard tessdata location can be configured with
// Options.TessdataPrefix.
//
// # Page Segmentation
//
// Lists are recognized as a single uniform block of text (Tesseract page
// segmentation mode 6). Automatic layout analysis tends to split numbered
// markers from the names that follow them, which breaks line parsing.
//
// # Languages
//
// The default language is English ("eng"). Several languages can be
// combined with "+", e.g. "eng+deu".
//
// # Error Handling
//
// Recognize returns errors for:
//   - Unsupported language codes or missing language data
//   - Tesseract initialization failures
//   - Image encoding failures
//   - A cancelled context (checked before the engine is started)
package ocr
