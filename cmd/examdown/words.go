package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/examdown/source"
)

func newWordsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Dump the positioned words of a file as JSON",
		Long: `Reads the words of every page and writes them as a JSON word dump, which
extract and lines accept as input. Useful to run the layout stages on OCR
output without running OCR again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.Open(args[0], sourceOptions(a))
			if err != nil {
				return err
			}
			defer src.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return source.WriteJSON(cmd.Context(), w, src)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file (default stdout)")
	return cmd
}

func sourceOptions(a *app) source.Options {
	opts := source.DefaultOptions()
	opts.WordGap = a.config.Layout.WordGap
	opts.OCRLanguage = a.config.OCR.Language
	opts.ImageDPI = a.config.OCR.DPI
	return opts
}
