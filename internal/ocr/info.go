package ocr

import (
	"github.com/otiai10/gosseract/v2"
)

// TesseractVersion returns the installed Tesseract version.
func TesseractVersion() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// OCRInfo contains information about the OCR subsystem.
type OCRInfo struct {
	Available bool     `json:"available"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Error     string   `json:"error,omitempty"`
	Backend   string   `json:"backend"`
}

// GetOCRInfo reports whether Tesseract can be used and which languages
// are installed.
func GetOCRInfo() OCRInfo {
	info := OCRInfo{Backend: "gosseract"}

	version := TesseractVersion()
	if version == "" {
		info.Error = "tesseract library not available"
		return info
	}
	info.Version = version

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Available = true
	info.Languages = langs
	return info
}
