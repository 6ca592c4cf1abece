// Package main provides name-extract, which reads numbered name lists out of
// page images with OCR and writes them to a CSV file.
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
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "name-extract [flags] IMAGE...",
		Short: "Extract names from images of numbered lists",
		Long: `name-extract runs OCR over each image in the order given, keeps the lines
that look like numbered list items ("12. Jane Doe"), removes duplicates and
writes the names to a CSV file with a single Name column.

Images are preprocessed before recognition: converted to grayscale, upscaled
and contrast enhanced.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&opts.output, "out", "o", "", "CSV file to write (default extracted_list.csv)")
	f.StringVar(&opts.dir, "dir", "", "Also process every supported image in this directory, sorted by name")
	f.StringVarP(&opts.language, "lang", "l", "", "Tesseract language code (default eng)")
	f.IntVar(&opts.psm, "psm", 0, "Tesseract page segmentation mode (default 6)")
	f.StringVar(&opts.tessdata, "tessdata", "", "Directory containing traineddata files")
	f.StringVar(&opts.region, "region", "", "Only read part of each page: left-half, right-half, ... or x1,y1,x2,y2")
	f.BoolVar(&opts.showText, "show-text", false, "Print the raw OCR text of every image")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print errors")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
