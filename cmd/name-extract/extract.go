package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/config"
	"github.com/ironsheep/name-list-tools/internal/extract"
	"github.com/ironsheep/name-list-tools/internal/imaging"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/ocr"
)

type extractOptions struct {
	configPath string
	output     string
	dir        string
	language   string
	psm        int
	tessdata   string
	region     string
	showText   bool
	quiet      bool
}

// newRecognizer is replaced in tests.
var newRecognizer = func(opts ocr.Options) ocr.Recognizer {
	return ocr.NewTesseract(opts)
}

func runExtract(cmd *cobra.Command, opts *extractOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	paths := args
	if opts.dir != "" {
		found, err := listImages(opts.dir)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := extract.NewPipeline(
		newRecognizer(cfg.OCROptions()),
		extract.WithPreprocess(cfg.PreprocessOptions()),
		extract.WithLogger(logger),
	)

	res, err := pipeline.Run(ctx, paths, cfg.CSVPath, progressHooks(cmd, opts))
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if !opts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d names from %d images to %s\n", res.Count, res.Images, res.Output)
	}
	return nil
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *extractOptions) error {
	f := cmd.Flags()
	if f.Changed("out") {
		cfg.CSVPath = opts.output
	}
	if f.Changed("lang") {
		cfg.OCR.Language = opts.language
	}
	if f.Changed("psm") {
		if err := ocr.ValidatePageSegMode(opts.psm); err != nil {
			return err
		}
		cfg.OCR.PageSegMode = opts.psm
	}
	if f.Changed("tessdata") {
		cfg.OCR.TessdataPrefix = opts.tessdata
	}
	if f.Changed("region") {
		cfg.OCR.Region = opts.region
	}
	return cfg.Validate()
}

func progressHooks(cmd *cobra.Command, opts *extractOptions) extract.Hooks {
	if opts.quiet {
		return extract.Hooks{}
	}
	out, status := cmd.OutOrStdout(), cmd.ErrOrStderr()

	hooks := extract.Hooks{
		ImageStarted: func(index, total int, path string) {
			fmt.Fprintf(status, "Processing image %d/%d: %s\n", index, total, path)
		},
		NamesParsed: func(_ int, _ string, added, total int) {
			fmt.Fprintf(status, "  %d new names (%d total)\n", added, total)
		},
	}
	if opts.showText {
		hooks.TextRecognized = func(_ int, path, text string) {
			fmt.Fprintf(out, "--- %s ---\n%s\n", filepath.Base(path), strings.TrimRight(text, "\n"))
		}
	}
	return hooks
}

// listImages returns the supported image files directly inside dir.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imaging.IsSupported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
