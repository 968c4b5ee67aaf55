package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/examdown/store"
)

type ingestOptions struct {
	databaseURL string
	pages       string
	tokenModel  string
}

func newIngestCmd(a *app) *cobra.Command {
	opts := &ingestOptions{}

	cmd := &cobra.Command{
		Use:   "ingest <file>",
		Short: "Extract an exam file and store its questions in PostgreSQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIngest(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.databaseURL, "db-url", "", "PostgreSQL connection URL (defaults to EXAMDOWN_DATABASE_URL or database.url)")
	cmd.Flags().StringVar(&opts.pages, "pages", "", "Pages to read, e.g. 2-31 or 1,3,5")
	cmd.Flags().StringVar(&opts.tokenModel, "token-model", "gpt-3.5-turbo", "Model whose tokenizer counts question tokens (empty disables counting)")
	return cmd
}

func (a *app) runIngest(cmd *cobra.Command, input string, opts *ingestOptions) error {
	databaseURL := opts.databaseURL
	if databaseURL == "" {
		databaseURL = a.config.Database.URL
	}
	if databaseURL == "" {
		return fmt.Errorf("--db-url or EXAMDOWN_DATABASE_URL is required")
	}

	ext, err := a.extractor(input, opts.pages)
	if err != nil {
		return err
	}
	doc, warnings, err := ext.Context(cmd.Context()).Document()
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", input, err)
	}
	logWarnings(input, warnings)

	var counter store.TokenCounter
	if opts.tokenModel != "" {
		tc, err := store.NewTiktokenCounter(opts.tokenModel)
		if err != nil {
			slog.Warn("token counting disabled", "error", err)
		} else {
			counter = tc
		}
	}

	run, err := store.NewRun(doc, counter)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := store.NewPostgresStore(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Init(ctx); err != nil {
		return err
	}
	if err := db.SaveRun(ctx, run); err != nil {
		return err
	}
	slog.Info("run saved", "id", run.ID, "questions", len(run.Questions), "tokens", run.TotalTokens())

	w := cmd.OutOrStdout()
	successStyle.Fprintf(w, "✓ %s\n", run.ID)
	labelStyle.Fprint(w, "questions: ")
	fmt.Fprintln(w, len(run.Questions))
	labelStyle.Fprint(w, "tokens: ")
	fmt.Fprintln(w, run.TotalTokens())
	return nil
}
