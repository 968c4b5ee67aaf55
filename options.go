package examdown

import (
	"context"
	"runtime"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/layout"
	"github.com/tsawler/examdown/markdown"
	"github.com/tsawler/examdown/segment"
	"github.com/tsawler/examdown/source"
)

// Config holds the configuration of every pipeline stage
type Config struct {
	Columns   layout.ColumnConfig
	Lines     layout.LineConfig
	Noise     classify.NoiseConfig
	Metadata  segment.MetadataConfig
	Assembler markdown.AssemblerConfig
	Source    source.Options
}

// DefaultConfig returns the configuration tuned for ENEM booklets
func DefaultConfig() Config {
	return Config{
		Columns:   layout.DefaultColumnConfig(),
		Lines:     layout.DefaultLineConfig(),
		Noise:     classify.DefaultNoiseConfig(),
		Metadata:  segment.DefaultMetadataConfig(),
		Assembler: markdown.DefaultAssemblerConfig(),
		Source:    source.DefaultOptions(),
	}
}

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Per-page layout workers
	workers int

	ctx    context.Context
	config Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:   nil, // nil means all pages
		workers: runtime.NumCPU(),
		ctx:     context.Background(),
		config:  DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		workers: o.workers,
		ctx:     o.ctx,
		config:  o.config,
	}

	// Deep copy slices
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.config.Noise.Patterns != nil {
		newOpts.config.Noise.Patterns = append(newOpts.config.Noise.Patterns[:0:0], o.config.Noise.Patterns...)
	}

	return newOpts
}
