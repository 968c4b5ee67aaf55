package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/ocr"
)

// ImageSource recognises the words of page scans with OCR, one image per
// page.
type ImageSource struct {
	paths  []string
	opts   Options
	client recognizer
}

// recognizer is the part of ocr.Client the source needs
type recognizer interface {
	Words(imageData []byte) ([]ocr.Word, error)
	Close() error
}

// OpenImages creates a source over page images. OCR support must be
// compiled in (-tags ocr); otherwise the error wraps ocr.ErrOCRNotEnabled.
func OpenImages(opts Options, paths ...string) (*ImageSource, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("starting OCR: %w", err)
	}
	if opts.OCRLanguage != "" {
		if err := client.SetLanguage(opts.OCRLanguage); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR language %q: %w", opts.OCRLanguage, err)
		}
	}
	if opts.ImageDPI <= 0 {
		opts.ImageDPI = DefaultOptions().ImageDPI
	}
	return &ImageSource{paths: paths, opts: opts, client: client}, nil
}

// PageCount returns the number of images
func (s *ImageSource) PageCount() int {
	return len(s.paths)
}

// Page recognises image i
func (s *ImageSource) Page(ctx context.Context, i int) (model.Page, error) {
	if err := ctx.Err(); err != nil {
		return model.Page{}, err
	}
	if err := checkIndex(i, len(s.paths)); err != nil {
		return model.Page{}, err
	}

	data, err := os.ReadFile(s.paths[i])
	if err != nil {
		return model.Page{}, fmt.Errorf("reading image: %w", err)
	}

	words, err := s.client.Words(data)
	if err != nil {
		return model.Page{}, fmt.Errorf("page %d: recognising %s: %v: %w", i+1, s.paths[i], err, ErrPageContent)
	}

	return imagePage(i+1, data, words, s.opts.ImageDPI)
}

// imagePage converts OCR words in pixels into a page in points
func imagePage(number int, data []byte, words []ocr.Word, dpi float64) (model.Page, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.Page{}, fmt.Errorf("page %d: decoding image header: %v: %w", number, err, ErrPageContent)
	}

	scale := 72.0 / dpi
	page := model.NewPage(number, float64(cfg.Width)*scale, float64(cfg.Height)*scale)
	for _, w := range words {
		box := model.NewBBox(float64(w.Box.Min.X), float64(w.Box.Min.Y), float64(w.Box.Max.X), float64(w.Box.Max.Y))
		page.AddWord(w.Text, box.Scale(scale))
	}
	return page, nil
}

// Close releases the OCR engine
func (s *ImageSource) Close() error {
	return s.client.Close()
}
