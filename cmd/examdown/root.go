package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/examdown"
	"github.com/tsawler/examdown/internal/config"
	"github.com/tsawler/examdown/internal/logger"
)

const appName = "examdown"

var (
	successStyle = color.New(color.FgHiGreen)
	labelStyle   = color.New(color.Bold, color.FgHiWhite)
	warnStyle    = color.New(color.FgHiYellow)
)

// app holds the state shared by every subcommand
type app struct {
	configPath string
	logLevel   string

	config *config.Config
	log    io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "ENEM exam booklets to Markdown",
		Long: color.New(color.FgHiMagenta).Sprint(
			"Rebuilds the reading order of ENEM exam booklets and renders every question as Markdown.",
		),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.log != nil {
				return a.log.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config.toml (default $XDG_CONFIG_HOME/examdown/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides the config file)")

	rootCmd.AddCommand(
		newExtractCmd(a),
		newLinesCmd(a),
		newWordsCmd(a),
		newIngestCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// setup loads the configuration and installs the logger
func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	closer, err := logger.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}

	a.config = cfg
	a.log = closer
	return nil
}

// extractor opens path with the configured pipeline
func (a *app) extractor(path, pages string) (*examdown.Extractor, error) {
	pipeline, err := a.config.Pipeline()
	if err != nil {
		return nil, err
	}

	ext := examdown.Open(path).WithConfig(pipeline)
	if a.config.Layout.Workers > 0 {
		ext = ext.Workers(a.config.Layout.Workers)
	}
	if pages != "" {
		selected, err := parsePages(pages)
		if err != nil {
			return nil, err
		}
		ext = ext.Pages(selected...)
	}
	return ext, nil
}
