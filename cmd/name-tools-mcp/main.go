package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/config"
	"github.com/ironsheep/name-list-tools/internal/extract"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/ocr"
	"github.com/ironsheep/name-list-tools/internal/search"
	"github.com/ironsheep/name-list-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("name-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("name-tools-mcp - MCP server for extracting and searching name lists")
			fmt.Println()
			fmt.Println("Usage: name-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  NAMETOOLS_CONFIG=path         YAML config file")
			fmt.Println("  NAMETOOLS_CSV_PATH=path       Name list (default extracted_list.csv)")
			fmt.Println("  NAMETOOLS_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  NAMETOOLS_HEADLESS=true       Hide the search browser window")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("NAMETOOLS_CONFIG"))
	if err != nil {
		return err
	}

	// Logging goes to stderr; stdout is for MCP protocol
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	logger.Debug("starting name-tools-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	browser := search.NewBrowser(cfg.SearchOptions(), logger.Named("search"))
	defer browser.Close()

	server.Version = Version
	srv := server.New(server.Options{
		CSVPath: cfg.CSVPath,
		Pipeline: extract.NewPipeline(
			ocr.NewTesseract(cfg.OCROptions()),
			extract.WithPreprocess(cfg.PreprocessOptions()),
			extract.WithLogger(logger.Named("extract")),
		),
		Searcher:   browser,
		Preprocess: cfg.PreprocessOptions(),
		Logger:     logger.Named("mcp"),
	})

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
