// Package layout rebuilds reading-order text lines from positioned words.
//
// Exam booklets are printed either full width or in two columns. The
// [ColumnClassifier] looks for an empty vertical band around the page center
// and, when one exists, returns the x-coordinate that splits the columns:
//
//	boundary, twoColumns := layout.NewColumnClassifier().Boundary(page.Words, page.Width)
//
// The [LineBuilder] buckets words by their quantized top coordinate, joins
// each bucket left to right and, on two-column pages, emits the whole left
// column before the right one:
//
//	lines, err := layout.NewLineBuilder().PageLines(page)
//
// # Configuration
//
// Both stages can be tuned independently:
//
//	cols := layout.DefaultColumnConfig()
//	cols.MinGap = 8
//	lines := layout.DefaultLineConfig()
//	lines.YTolerance = 3
//	builder := layout.NewLineBuilderWithConfig(lines, cols)
//
// # Malformed pages
//
// A page holding a word with a NaN, infinite, inverted or off-page box yields
// no lines and an error wrapping [ErrMalformedWord]. Callers are expected to
// record it as a warning and carry on with the remaining pages.
package layout
