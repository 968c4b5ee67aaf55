package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/examdown/model"
)

// defaultNoisePatterns match whole lines of page chrome. They are anchored
// and made case-insensitive by CompilePatterns.
var defaultNoisePatterns = []string{
	`\*[A-Z0-9]{4,}\*`, // watermark code: *ENEM2013AZ*
	`(CH|CN|LC|MT)\s*[-–]\s*\d[ºo°]\s*dia.*página\s*\d+.*`, // footer: CH - 1º dia | Caderno 1 - AZUL - Página 5
	`\d{4}`,            // bare year
	`enem\s*\d*`,       // logo
	`\d[ºo°]\s*DIA\s*`, // day marker
	`CADERNO\s*`,
	`\d+\s*`, // page number
	`(AZUL|AMARELO|BRANCO|ROSA|CINZA|VERDE|LARANJA)\s*`,
}

// NoiseConfig holds configuration for noise filtering
type NoiseConfig struct {
	// Patterns are matched against the whole trimmed line
	Patterns []*regexp.Regexp

	// RepairDuplicates collapses runs of 3 or more identical characters
	// before the noise test.
	// Default: true
	RepairDuplicates bool
}

// DefaultNoiseConfig returns the patterns tuned for ENEM booklets
func DefaultNoiseConfig() NoiseConfig {
	patterns, err := CompilePatterns(defaultNoisePatterns)
	if err != nil {
		panic(err)
	}
	return NoiseConfig{
		Patterns:         patterns,
		RepairDuplicates: true,
	}
}

// CompilePatterns compiles full-line, case-insensitive noise patterns
func CompilePatterns(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(`(?i)^(?:` + expr + `)$`)
		if err != nil {
			return nil, fmt.Errorf("invalid noise pattern %q: %w", expr, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// NoiseFilter discards lines that are pure page chrome
type NoiseFilter struct {
	config NoiseConfig
}

// NewNoiseFilter creates a noise filter with default configuration
func NewNoiseFilter() *NoiseFilter {
	return &NoiseFilter{
		config: DefaultNoiseConfig(),
	}
}

// NewNoiseFilterWithConfig creates a noise filter with custom configuration
func NewNoiseFilterWithConfig(config NoiseConfig) *NoiseFilter {
	return &NoiseFilter{
		config: config,
	}
}

// IsNoise reports whether the trimmed line is empty or is entirely matched
// by one of the noise patterns.
func (f *NoiseFilter) IsNoise(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || f.matches(s)
}

// matches runs the pattern table against an already trimmed line
func (f *NoiseFilter) matches(s string) bool {
	for _, re := range f.config.Patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Repair trims the line and, when enabled, collapses duplicated glyphs
func (f *NoiseFilter) Repair(s string) string {
	s = strings.TrimSpace(s)
	if f.config.RepairDuplicates {
		s = RepairDuplicates(s)
	}
	return s
}

// Clean repairs every line and drops the noise. Page numbers are kept.
func (f *NoiseFilter) Clean(lines []model.Line) []model.Line {
	out := make([]model.Line, 0, len(lines))
	for _, l := range lines {
		text := f.Repair(l.Text)
		if f.IsNoise(text) {
			continue
		}
		out = append(out, model.Line{Page: l.Page, Text: text})
	}
	return out
}

// RepairDuplicates collapses every run of three or more identical
// consecutive characters to a single one. Runs of two are kept.
func RepairDuplicates(s string) string {
	runes := []rune(s)
	if len(runes) < 3 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			sb.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				sb.WriteRune(runes[k])
			}
		}
		i = j
	}
	return sb.String()
}
