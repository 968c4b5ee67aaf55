// Package config loads the examdown configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/examdown/config.toml unless
// another path is given. A missing file means defaults. Environment
// variables override the file:
//
//	EXAMDOWN_DATABASE_URL  database.url
//	EXAMDOWN_LOG_LEVEL     log.level
//	EXAMDOWN_LISTEN_ADDR   server.listen_addr
//	EXAMDOWN_OCR_LANGUAGE  ocr.language
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"

	"github.com/tsawler/examdown"
	"github.com/tsawler/examdown/classify"
)

const appName = "examdown"

type Config struct {
	Layout   LayoutConfig   `toml:"layout"`
	Noise    NoiseConfig    `toml:"noise"`
	Markdown MarkdownConfig `toml:"markdown"`
	OCR      OCRConfig      `toml:"ocr"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

type LayoutConfig struct {
	YTolerance       float64 `toml:"y_tolerance" validate:"gt=0"`
	PageMargin       float64 `toml:"page_margin" validate:"gte=0"`
	CentralBandRatio float64 `toml:"central_band_ratio" validate:"gt=0,lte=1"`
	MinWordsPerSide  int     `toml:"min_words_per_side" validate:"gte=1"`
	MinGap           float64 `toml:"min_gap" validate:"gte=0"`
	WordGap          float64 `toml:"word_gap" validate:"gt=0"`
	Workers          int     `toml:"workers" validate:"gte=0"` // 0 means one per CPU
}

type NoiseConfig struct {
	ExtraPatterns    []string `toml:"extra_patterns"`
	RepairDuplicates bool     `toml:"repair_duplicates"`
}

type MarkdownConfig struct {
	DefaultTitle    string `toml:"default_title" validate:"required"`
	OrphanHeading   string `toml:"orphan_heading" validate:"required"`
	NoContentNotice string `toml:"no_content_notice"`
	MetadataLines   int    `toml:"metadata_lines" validate:"gte=1"`
	ColorLines      int    `toml:"color_lines" validate:"gte=1"`
}

type OCRConfig struct {
	Language string  `toml:"language" validate:"required"`
	DPI      float64 `toml:"dpi" validate:"gt=0"`
}

type ServerConfig struct {
	ListenAddr  string `toml:"listen_addr" validate:"required"`
	MaxUploadMB int    `toml:"max_upload_mb" validate:"gte=1"`
}

type DatabaseConfig struct {
	URL string `toml:"url" validate:"omitempty,url"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"` // empty logs to stderr
}

func NewDefault() *Config {
	pipeline := examdown.DefaultConfig()

	return &Config{
		Layout: LayoutConfig{
			YTolerance:       pipeline.Lines.YTolerance,
			PageMargin:       pipeline.Lines.PageMargin,
			CentralBandRatio: pipeline.Columns.CentralBandRatio,
			MinWordsPerSide:  pipeline.Columns.MinWordsPerSide,
			MinGap:           pipeline.Columns.MinGap,
			WordGap:          pipeline.Source.WordGap,
			Workers:          0,
		},
		Noise: NoiseConfig{
			ExtraPatterns:    []string{},
			RepairDuplicates: pipeline.Noise.RepairDuplicates,
		},
		Markdown: MarkdownConfig{
			DefaultTitle:    pipeline.Assembler.DefaultTitle,
			OrphanHeading:   pipeline.Assembler.OrphanHeading,
			NoContentNotice: pipeline.Assembler.NoContentNotice,
			MetadataLines:   pipeline.Metadata.MaxLines,
			ColorLines:      pipeline.Metadata.ColorLines,
		},
		OCR: OCRConfig{
			Language: pipeline.Source.OCRLanguage,
			DPI:      pipeline.Source.ImageDPI,
		},
		Server: ServerConfig{
			ListenAddr:  ":8080",
			MaxUploadMB: 64,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under the XDG config home
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Load reads the config file at path, or DefaultPath when path is empty,
// applies the environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	config := NewDefault()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("EXAMDOWN_DATABASE_URL"); ok {
		c.Database.URL = v
	}
	if v, ok := os.LookupEnv("EXAMDOWN_LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("EXAMDOWN_LISTEN_ADDR"); ok {
		c.Server.ListenAddr = v
	}
	if v, ok := os.LookupEnv("EXAMDOWN_OCR_LANGUAGE"); ok {
		c.OCR.Language = v
	}
}

// ValidationError lists the fields that failed validation with the tag they
// failed on.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f, msg := range e.Errors {
		fields = append(fields, f+" "+msg)
	}
	sort.Strings(fields)
	return "invalid config: " + strings.Join(fields, ", ")
}

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		fields := make(map[string]string)
		for _, e := range errs {
			fields[e.Namespace()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return &ValidationError{Errors: fields}
	}
	return nil
}

// Pipeline converts the file settings into the extraction configuration.
// Extra noise patterns are compiled and appended to the built-in ones.
func (c *Config) Pipeline() (examdown.Config, error) {
	pipeline := examdown.DefaultConfig()

	pipeline.Lines.YTolerance = c.Layout.YTolerance
	pipeline.Lines.PageMargin = c.Layout.PageMargin
	pipeline.Columns.CentralBandRatio = c.Layout.CentralBandRatio
	pipeline.Columns.MinWordsPerSide = c.Layout.MinWordsPerSide
	pipeline.Columns.MinGap = c.Layout.MinGap

	extra, err := classify.CompilePatterns(c.Noise.ExtraPatterns)
	if err != nil {
		return examdown.Config{}, fmt.Errorf("noise.extra_patterns: %w", err)
	}
	pipeline.Noise.Patterns = append(pipeline.Noise.Patterns, extra...)
	pipeline.Noise.RepairDuplicates = c.Noise.RepairDuplicates

	pipeline.Metadata.MaxLines = c.Markdown.MetadataLines
	pipeline.Metadata.ColorLines = c.Markdown.ColorLines

	pipeline.Assembler.DefaultTitle = c.Markdown.DefaultTitle
	pipeline.Assembler.OrphanHeading = c.Markdown.OrphanHeading
	pipeline.Assembler.NoContentNotice = c.Markdown.NoContentNotice

	pipeline.Source.WordGap = c.Layout.WordGap
	pipeline.Source.OCRLanguage = c.OCR.Language
	pipeline.Source.ImageDPI = c.OCR.DPI

	return pipeline, nil
}
