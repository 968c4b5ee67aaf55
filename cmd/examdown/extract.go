package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tsawler/examdown"
)

// previewLines is how many cleaned lines -v prints
const previewLines = 100

type extractOptions struct {
	output  string
	pages   string
	verbose bool
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Write the Markdown of an exam file",
		Long: `Reads a PDF, hOCR, page scan or JSON word dump and writes its questions as Markdown.

The output defaults to the input name with a .md extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output Markdown file")
	cmd.Flags().StringVar(&opts.pages, "pages", "", "Pages to read, e.g. 2-31 or 1,3,5")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, fmt.Sprintf("Print the first %d cleaned lines", previewLines))
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, input string, opts *extractOptions) error {
	ext, err := a.extractor(input, opts.pages)
	if err != nil {
		return err
	}

	doc, warnings, err := ext.Document()
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", input, err)
	}
	logWarnings(input, warnings)

	output := opts.output
	if output == "" {
		output = markdownPath(input)
	}
	if err := os.WriteFile(output, []byte(doc.Markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	w := cmd.OutOrStdout()
	successStyle.Fprintf(w, "✓ %s\n", output)
	labelStyle.Fprint(w, "characters: ")
	fmt.Fprintln(w, utf8.RuneCountInString(doc.Markdown))
	labelStyle.Fprint(w, "lines: ")
	fmt.Fprintln(w, strings.Count(doc.Markdown, "\n"))
	labelStyle.Fprint(w, "questions: ")
	fmt.Fprintln(w, doc.QuestionCount())
	if len(warnings) > 0 {
		warnStyle.Fprintf(w, "%d warning(s): %s\n", len(warnings), examdown.FormatWarnings(warnings))
	}

	if opts.verbose {
		fmt.Fprintln(w)
		for i, l := range doc.Lines {
			if i >= previewLines {
				break
			}
			fmt.Fprintf(w, "[%03d] %s\n", i, l.Text)
		}
	}
	return nil
}

// markdownPath replaces the extension of input with .md
func markdownPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".md"
}

func logWarnings(input string, warnings []examdown.Warning) {
	for _, w := range warnings {
		slog.Warn("extraction warning", "file", input, "page", w.Page, "message", w.Message)
	}
}
