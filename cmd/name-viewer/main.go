// Package main provides name-viewer, a local web page for browsing an
// extracted name list and looking names up with a search engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func newRootCmd() *cobra.Command {
	opts := &viewerOptions{}

	cmd := &cobra.Command{
		Use:   "name-viewer",
		Short: "Browse and search an extracted name list",
		Long: `name-viewer serves a page listing the names in the CSV written by
name-extract. Type to filter the list; double-click a name to submit it to
the search engine in a browser window and show the start of the results.
Names that were searched in this session are tagged "Searched".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&opts.csvPath, "csv", "", "CSV file to read (default extracted_list.csv)")
	f.StringVar(&opts.addr, "addr", "", "Listen address (default 127.0.0.1:8765)")
	f.BoolVar(&opts.headless, "headless", false, "Run the search browser without a window")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
