// Package config loads settings shared by the extractor, the viewer and the
// MCP server.
//
// Values are resolved in order, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. An optional YAML file
//  3. A .env file in the working directory, then NAMETOOLS_* environment
//     variables
//  4. Command line flags, applied by the caller after Load returns
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "NAMETOOLS_"

// Config is the complete runtime configuration.
type Config struct {
	// CSVPath is where the extractor writes and the viewer reads names.
	CSVPath string `yaml:"csv_path" validate:"required"`

	OCR    OCRConfig    `yaml:"ocr"`
	Search SearchConfig `yaml:"search"`
	Viewer ViewerConfig `yaml:"viewer"`
	Log    LogConfig    `yaml:"log"`
}

// OCRConfig controls preprocessing and recognition.
type OCRConfig struct {
	Language       string  `yaml:"language" validate:"required"`
	PageSegMode    int     `yaml:"page_seg_mode" validate:"min=0,max=13"`
	TessdataPrefix string  `yaml:"tessdata_prefix"`
	Scale          float64 `yaml:"scale" validate:"gt=0"`
	Contrast       float64 `yaml:"contrast" validate:"gte=0"`
	Region         string  `yaml:"region"`
}

// SearchConfig controls the browser automation session.
type SearchConfig struct {
	URL         string        `yaml:"url" validate:"required,url"`
	Headless    bool          `yaml:"headless"`
	UserAgent   string        `yaml:"user_agent"`
	ResultLimit int           `yaml:"result_limit" validate:"gt=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	SettleMin   time.Duration `yaml:"settle_min" validate:"gte=0"`
	SettleMax   time.Duration `yaml:"settle_max" validate:"gtefield=SettleMin"`
	ResultsMin  time.Duration `yaml:"results_min" validate:"gte=0"`
	ResultsMax  time.Duration `yaml:"results_max" validate:"gtefield=ResultsMin"`
}

// ViewerConfig controls the local web viewer.
type ViewerConfig struct {
	ListenAddr string `yaml:"listen_addr" validate:"required,hostname_port"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		CSVPath: "extracted_list.csv",
		OCR: OCRConfig{
			Language:    "eng",
			PageSegMode: 6,
			Scale:       2,
			Contrast:    2,
		},
		Search: SearchConfig{
			URL:         "https://www.google.com",
			Headless:    false,
			UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			ResultLimit: 1000,
			Timeout:     60 * time.Second,
			SettleMin:   2 * time.Second,
			SettleMax:   4 * time.Second,
			ResultsMin:  3 * time.Second,
			ResultsMax:  5 * time.Second,
		},
		Viewer: ViewerConfig{
			ListenAddr: "127.0.0.1:8765",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), a .env file and the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from NAMETOOLS_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	strs := map[string]*string{
		"CSV_PATH":        &c.CSVPath,
		"OCR_LANGUAGE":    &c.OCR.Language,
		"TESSDATA_PREFIX": &c.OCR.TessdataPrefix,
		"OCR_REGION":      &c.OCR.Region,
		"SEARCH_URL":      &c.Search.URL,
		"USER_AGENT":      &c.Search.UserAgent,
		"LISTEN_ADDR":     &c.Viewer.ListenAddr,
		"LOG_LEVEL":       &c.Log.Level,
		"LOG_FORMAT":      &c.Log.Format,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"OCR_PSM":      &c.OCR.PageSegMode,
		"RESULT_LIMIT": &c.Search.ResultLimit,
	}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config error: %s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"OCR_SCALE":    &c.OCR.Scale,
		"OCR_CONTRAST": &c.OCR.Contrast,
	}
	for name, dst := range floats {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("config error: %s%s: %w", EnvPrefix, name, err)
			}
			*dst = f
		}
	}

	if v, ok := get("SEARCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: %sSEARCH_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Search.Timeout = d
	}

	if v, ok := get("HEADLESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %sHEADLESS: %w", EnvPrefix, err)
		}
		c.Search.Headless = b
	}

	return nil
}

var validate = validator.New()

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("'%s' failed '%s' (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}
