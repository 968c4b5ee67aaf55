package layout

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/examdown/model"
)

// ErrMalformedWord is returned when a page holds a word whose bounding box
// cannot be trusted (NaN, infinite, inverted or off the page).
var ErrMalformedWord = errors.New("malformed word bounding box")

// LineConfig holds configuration for line building
type LineConfig struct {
	// YTolerance is the vertical quantum used to bucket words into lines.
	// Words whose top coordinates round to the same multiple share a line.
	// Default: 4 points
	YTolerance float64

	// PageMargin is how far a word may overflow the page edges before the page
	// is considered malformed. Only checked when the page size is known.
	// Default: 5 points
	PageMargin float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 4.0,
		PageMargin: 5.0,
	}
}

// LineBuilder groups positioned words into reading-order lines
type LineBuilder struct {
	config  LineConfig
	columns *ColumnClassifier
}

// NewLineBuilder creates a line builder with default configuration
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		config:  DefaultLineConfig(),
		columns: NewColumnClassifier(),
	}
}

// NewLineBuilderWithConfig creates a line builder with custom configuration
func NewLineBuilderWithConfig(config LineConfig, columns ColumnConfig) *LineBuilder {
	return &LineBuilder{
		config:  config,
		columns: NewColumnClassifierWithConfig(columns),
	}
}

// bucket is one quantized row of words
type bucket struct {
	key   int
	words []model.Word
}

// Build groups words into lines ordered top to bottom. Columns are not
// considered; see PageLines for column-aware building.
func (b *LineBuilder) Build(words []model.Word) []string {
	if len(words) == 0 {
		return nil
	}

	tolerance := b.config.YTolerance
	if tolerance <= 0 {
		tolerance = DefaultLineConfig().YTolerance
	}

	byKey := make(map[int]*bucket)
	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		key := int(math.Round(w.Box.Top / tolerance))
		bk, ok := byKey[key]
		if !ok {
			bk = &bucket{key: key}
			byKey[key] = bk
		}
		bk.words = append(bk.words, w)
	}

	buckets := make([]*bucket, 0, len(byKey))
	for _, bk := range byKey {
		buckets = append(buckets, bk)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].key < buckets[j].key
	})

	lines := make([]string, 0, len(buckets))
	for _, bk := range buckets {
		sortWords(bk.words)
		parts := make([]string, len(bk.words))
		for i, w := range bk.words {
			parts[i] = norm.NFC.String(strings.TrimSpace(w.Text))
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	return lines
}

// sortWords orders the words of a line left to right. Ties on the left edge
// are broken by top, right and text so the result never depends on the
// input order.
func sortWords(words []model.Word) {
	sort.Slice(words, func(i, j int) bool {
		a, b := words[i], words[j]
		if a.Box.Left != b.Box.Left {
			return a.Box.Left < b.Box.Left
		}
		if a.Box.Top != b.Box.Top {
			return a.Box.Top < b.Box.Top
		}
		if a.Box.Right != b.Box.Right {
			return a.Box.Right < b.Box.Right
		}
		return a.Text < b.Text
	})
}

// PageLines builds the lines of a page in reading order. Two-column pages are
// read left column first, then right column.
//
// A page containing a malformed word contributes no lines; the returned error
// wraps ErrMalformedWord and describes the offending word.
func (b *LineBuilder) PageLines(page model.Page) ([]model.Line, error) {
	if len(page.Words) == 0 {
		return nil, nil
	}

	if err := b.validate(page); err != nil {
		return nil, err
	}

	var texts []string
	if boundary, ok := b.columns.Boundary(page.Words, page.Width); ok {
		left, right := SplitColumns(page.Words, boundary)
		texts = append(b.Build(left), b.Build(right)...)
	} else {
		texts = b.Build(page.Words)
	}

	lines := make([]model.Line, len(texts))
	for i, t := range texts {
		lines[i] = model.Line{Page: page.Number, Text: t}
	}
	return lines, nil
}

// validate checks every word box against the page
func (b *LineBuilder) validate(page model.Page) error {
	for i, w := range page.Words {
		if !w.Box.Valid() {
			return fmt.Errorf("page %d word %d (%q): %w", page.Number, i, w.Text, ErrMalformedWord)
		}
		if page.HasSize() && !w.Box.Within(page.Width, page.Height, b.config.PageMargin) {
			return fmt.Errorf("page %d word %d (%q) outside %.0fx%.0f page: %w",
				page.Number, i, w.Text, page.Width, page.Height, ErrMalformedWord)
		}
	}
	return nil
}
