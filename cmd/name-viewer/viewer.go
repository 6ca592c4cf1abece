package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/name-list-tools/internal/config"
	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/search"
	"github.com/ironsheep/name-list-tools/internal/viewer"
	"github.com/ironsheep/name-list-tools/internal/webui"
)

type viewerOptions struct {
	configPath string
	csvPath    string
	addr       string
	headless   bool
}

func runViewer(cmd *cobra.Command, opts *viewerOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("csv") {
		cfg.CSVPath = opts.csvPath
	}
	if f.Changed("addr") {
		cfg.Viewer.ListenAddr = opts.addr
	}
	if f.Changed("headless") {
		cfg.Search.Headless = opts.headless
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	browser := search.NewBrowser(cfg.SearchOptions(), logger.Named("search"))
	app := viewer.NewApp(cfg.CSVPath, browser, logger.Named("viewer"))

	// A missing list is shown on the page; the viewer still starts.
	if err := app.Load(); err != nil && !errors.Is(err, csvstore.ErrNotFound) {
		logger.Warn("name list not loaded", zap.Error(err))
	}

	srv, err := webui.New(app, logger.Named("http"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Viewer running at http://%s (Ctrl+C to stop)\n", cfg.Viewer.ListenAddr)
	return serve(ctx, srv, browser, cfg.Viewer.ListenAddr)
}

// serve runs the HTTP server until ctx is cancelled or the server fails,
// then closes any browser session still open.
func serve(ctx context.Context, srv *webui.Server, browser *search.Browser, addr string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		return browser.Close()
	})

	return g.Wait()
}
