// Package layout provides page layout reconstruction: column detection and
// grouping of positioned words into reading-order lines.
package layout

import (
	"math"

	"github.com/tsawler/examdown/model"
)

// ColumnConfig holds configuration for column classification
type ColumnConfig struct {
	// CentralBandRatio limits the evidence to words whose left edge lies within
	// this fraction of half the page width from the page center.
	// Default: 0.4
	CentralBandRatio float64

	// MinWordsPerSide is the number of central-band words required on each side
	// of the center before a split is considered.
	// Default: 5
	MinWordsPerSide int

	// MinGap is the minimum empty horizontal distance between the rightmost
	// left-column start and the leftmost right-column start.
	// Default: 5 points
	MinGap float64
}

// DefaultColumnConfig returns the configuration tuned for exam booklets
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		CentralBandRatio: 0.4,
		MinWordsPerSide:  5,
		MinGap:           5.0,
	}
}

// ColumnClassifier decides whether a page uses one or two text columns
type ColumnClassifier struct {
	config ColumnConfig
}

// NewColumnClassifier creates a column classifier with default configuration
func NewColumnClassifier() *ColumnClassifier {
	return &ColumnClassifier{
		config: DefaultColumnConfig(),
	}
}

// NewColumnClassifierWithConfig creates a column classifier with custom configuration
func NewColumnClassifierWithConfig(config ColumnConfig) *ColumnClassifier {
	return &ColumnClassifier{
		config: config,
	}
}

// Boundary returns the x-coordinate separating two columns. The second return
// value is false for single-column pages.
//
// The decision only looks at word start positions (left edges), so it does
// not depend on the order of words. When the page width is unknown the
// right-most word edge is used instead.
func (c *ColumnClassifier) Boundary(words []model.Word, pageWidth float64) (float64, bool) {
	if len(words) == 0 {
		return 0, false
	}

	if pageWidth <= 0 {
		pageWidth = rightmostEdge(words)
	}
	mid := pageWidth / 2
	window := mid * c.config.CentralBandRatio

	var central []float64
	for _, w := range words {
		if math.Abs(w.Box.Left-mid) < window {
			central = append(central, w.Box.Left)
		}
	}

	// Nothing in the band: the gutter is wider than the band itself, so the
	// whole page is the evidence.
	if len(central) == 0 {
		for _, w := range words {
			central = append(central, w.Box.Left)
		}
	}

	return c.split(central, mid)
}

// split applies the gap test to a set of start positions
func (c *ColumnClassifier) split(starts []float64, mid float64) (float64, bool) {
	leftCount, rightCount := 0, 0
	leftMax := math.Inf(-1)
	rightMin := math.Inf(1)

	for _, x := range starts {
		if x < mid {
			leftCount++
			leftMax = math.Max(leftMax, x)
		} else {
			rightCount++
			rightMin = math.Min(rightMin, x)
		}
	}

	if leftCount < c.config.MinWordsPerSide || rightCount < c.config.MinWordsPerSide {
		return 0, false
	}

	if rightMin <= leftMax {
		return 0, false
	}

	if rightMin-leftMax < c.config.MinGap {
		return 0, false
	}

	return (leftMax + rightMin) / 2, true
}

// SplitColumns partitions words by the column their left edge falls in
func SplitColumns(words []model.Word, boundary float64) (left, right []model.Word) {
	for _, w := range words {
		if w.Box.Left < boundary {
			left = append(left, w)
		} else {
			right = append(right, w)
		}
	}
	return left, right
}

func rightmostEdge(words []model.Word) float64 {
	maxRight := 0.0
	for _, w := range words {
		maxRight = math.Max(maxRight, w.Box.Right)
	}
	return maxRight
}
