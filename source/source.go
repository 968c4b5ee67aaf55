// Package source provides the positioned words of each page of an exam.
//
// A [Source] is read page by page. Implementations exist for PDFs with a
// text layer, Tesseract hOCR output, page scans recognised with OCR, JSON
// word dumps and in-memory pages. [Open] picks the implementation from the
// file name or, failing that, from the file content.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/examdown/format"
	"github.com/tsawler/examdown/model"
)

// ErrUnsupportedFormat is returned by Open for files it cannot read
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrPageContent marks a page whose content could not be decoded. The page
// is skipped; the rest of the document remains readable.
var ErrPageContent = errors.New("unreadable page content")

// Source yields the words of a document one page at a time
type Source interface {
	// PageCount returns the number of pages
	PageCount() int

	// Page returns page i (0-indexed). The returned page is numbered i+1.
	Page(ctx context.Context, i int) (model.Page, error)

	// Close releases the underlying file
	Close() error
}

// Options configures how sources read their input
type Options struct {
	// WordGap is the horizontal distance in points that separates two PDF
	// glyphs into different words.
	// Default: 3
	WordGap float64

	// OCRLanguage is the Tesseract language for page scans
	// Default: "por"
	OCRLanguage string

	// ImageDPI is the resolution assumed for page scans when converting
	// pixels to points.
	// Default: 300
	ImageDPI float64
}

// DefaultOptions returns sensible default options
func DefaultOptions() Options {
	return Options{
		WordGap:     3.0,
		OCRLanguage: "por",
		ImageDPI:    300,
	}
}

// Open opens path with the source matching its format
func Open(path string, opts Options) (Source, error) {
	f := format.Detect(path)
	if f == format.Unknown {
		var err error
		if f, err = sniff(path); err != nil {
			return nil, err
		}
	}

	var (
		src Source
		err error
	)
	switch f {
	case format.PDF:
		src, err = OpenPDF(path, opts)
	case format.HOCR:
		src, err = OpenHOCR(path)
	case format.Image:
		src, err = OpenImages(opts, path)
	case format.JSON:
		src, err = OpenJSON(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// sniff detects the format of a file from its content
func sniff(path string) (format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	f, err := format.DetectFromReader(file)
	if err != nil {
		return format.Unknown, fmt.Errorf("detecting format: %w", err)
	}
	return f, nil
}

// checkIndex validates a page index
func checkIndex(i, count int) error {
	if i < 0 || i >= count {
		return fmt.Errorf("page index %d out of range [0, %d)", i, count)
	}
	return nil
}
