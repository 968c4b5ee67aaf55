package segment

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/examdown/model"
)

var (
	yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)
	dayPattern  = regexp.MustCompile(`(?i)\d[ºo°]\s*DIA`)
)

// bookletColors in the order they are tried
var bookletColors = []string{"AZUL", "AMARELO", "BRANCO", "ROSA", "CINZA", "VERDE", "LARANJA"}

// MetadataConfig holds configuration for metadata extraction
type MetadataConfig struct {
	// MaxLines is how many leading lines are scanned for year, day and title.
	// Default: 60
	MaxLines int

	// ColorLines is how many leading lines may name the booklet colour.
	// Default: 12
	ColorLines int
}

// DefaultMetadataConfig returns sensible default configuration
func DefaultMetadataConfig() MetadataConfig {
	return MetadataConfig{
		MaxLines:   60,
		ColorLines: 12,
	}
}

// ExtractMetadata reads the best-effort document fields from the first
// lines. It expects lines that have not been through the noise filter, since
// the bare year is itself noise. Each field keeps its first match.
func ExtractMetadata(lines []string, config MetadataConfig) model.Metadata {
	var meta model.Metadata

	for i, line := range lines {
		if i >= config.MaxLines {
			break
		}
		s := strings.TrimSpace(line)

		if meta.Year == "" && yearPattern.MatchString(s) {
			meta.Year = s
		}
		if meta.Day == "" {
			if m := dayPattern.FindString(s); m != "" {
				meta.Day = m
			}
		}
		if meta.Title == "" && len([]rune(s)) > 10 && strings.Contains(strings.ToUpper(s), "EXAME NACIONAL") {
			meta.Title = s
		}
	}

	head := lines[:max(0, min(config.ColorLines, len(lines)))]
	for _, color := range bookletColors {
		if containsUpper(head, color) {
			meta.Booklet = cases.Title(language.BrazilianPortuguese).String(color)
			break
		}
	}

	return meta
}

func containsUpper(lines []string, s string) bool {
	for _, l := range lines {
		if strings.Contains(strings.ToUpper(l), s) {
			return true
		}
	}
	return false
}
