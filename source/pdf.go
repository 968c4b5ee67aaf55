package source

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/examdown/model"
)

// PDFSource reads the text layer of a PDF
type PDFSource struct {
	file   *os.File
	reader *pdf.Reader
	sizes  []pageSize // from pdfcpu; nil when it could not parse the file
	opts   Options
}

type pageSize struct {
	width, height float64
}

// OpenPDF opens a PDF file. Page sizes come from pdfcpu when it can read the
// file, otherwise from each page's MediaBox.
func OpenPDF(path string, opts Options) (*PDFSource, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	if opts.WordGap <= 0 {
		opts.WordGap = DefaultOptions().WordGap
	}

	return &PDFSource{
		file:   file,
		reader: reader,
		sizes:  pageSizes(path),
		opts:   opts,
	}, nil
}

// pageSizes reads every page size with pdfcpu, returning nil on failure
func pageSizes(path string) []pageSize {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	dims, err := api.PageDims(f, conf)
	if err != nil {
		return nil
	}
	sizes := make([]pageSize, len(dims))
	for i, d := range dims {
		sizes[i] = pageSize{width: d.Width, height: d.Height}
	}
	return sizes
}

// PageCount returns the number of pages
func (s *PDFSource) PageCount() int {
	return s.reader.NumPage()
}

// Page extracts the words of page i. A page whose content stream cannot be
// decoded returns an error wrapping ErrPageContent.
func (s *PDFSource) Page(ctx context.Context, i int) (model.Page, error) {
	if err := ctx.Err(); err != nil {
		return model.Page{}, err
	}
	if err := checkIndex(i, s.PageCount()); err != nil {
		return model.Page{}, err
	}

	glyphs, box, err := s.content(i + 1)
	if err != nil {
		return model.NewPage(i+1, 0, 0), fmt.Errorf("page %d: %w", i+1, err)
	}

	width, height := box.width(), box.height()
	if i < len(s.sizes) && s.sizes[i].width > 0 && s.sizes[i].height > 0 {
		width, height = s.sizes[i].width, s.sizes[i].height
	}

	page := model.NewPage(i+1, width, height)
	page.Words = onPage(glyphWords(glyphs, box, height, s.opts.WordGap), width, height)
	return page, nil
}

// content reads the glyphs and MediaBox of page num (1-indexed). The PDF
// library panics on some malformed streams; that is reported as an error.
func (s *PDFSource) content(num int) (glyphs []pdf.Text, box mediaBox, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: %w", r, ErrPageContent)
		}
	}()

	p := s.reader.Page(num)
	if p.V.IsNull() {
		return nil, mediaBox{}, fmt.Errorf("missing page object: %w", ErrPageContent)
	}
	return p.Content().Text, readMediaBox(p.V), nil
}

// Close closes the PDF file
func (s *PDFSource) Close() error {
	return s.file.Close()
}

// mediaBox is a page's MediaBox in PDF user space
type mediaBox struct {
	llx, lly, urx, ury float64
}

func (b mediaBox) width() float64  { return b.urx - b.llx }
func (b mediaBox) height() float64 { return b.ury - b.lly }

// readMediaBox follows the Parent chain until a MediaBox is found
func readMediaBox(v pdf.Value) mediaBox {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		mb := v.Key("MediaBox")
		if mb.Len() == 4 {
			return mediaBox{
				llx: mb.Index(0).Float64(),
				lly: mb.Index(1).Float64(),
				urx: mb.Index(2).Float64(),
				ury: mb.Index(3).Float64(),
			}
		}
		v = v.Key("Parent")
	}
	return mediaBox{}
}

// glyphWords joins glyphs into words, in content stream order. A word ends
// at a whitespace glyph, when the baseline moves, when the pen moves
// backwards or when the horizontal gap exceeds gap. PDF coordinates grow
// upwards, so they are flipped against the page height.
func glyphWords(glyphs []pdf.Text, box mediaBox, height, gap float64) []model.Word {
	var words []model.Word
	var sb strings.Builder
	var cur model.BBox
	var baseline float64
	open := false

	flush := func() {
		if open {
			if text := strings.TrimSpace(sb.String()); text != "" {
				words = append(words, model.Word{Text: text, Box: cur})
			}
		}
		sb.Reset()
		open = false
	}

	for _, g := range glyphs {
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}

		x := g.X - box.llx
		y := g.Y - box.lly
		size := g.FontSize
		if size <= 0 {
			size = 10
		}

		if open {
			sameLine := math.Abs(y-baseline) <= size*0.3
			forward := x >= cur.Right-size*0.5
			if !sameLine || !forward || x-cur.Right > gap {
				flush()
			}
		}

		glyphBox := model.NewBBox(x, height-y-size, x+g.W, height-y+size*0.2)
		if !open {
			cur = glyphBox
			baseline = y
			open = true
		} else {
			cur = cur.Union(glyphBox)
		}
		sb.WriteString(g.S)
	}
	flush()

	return words
}

// onPage drops the words that are not visible and clips the rest to the
// page. Glyph boxes are estimated from the font size, so text set near an
// edge can overflow it slightly.
func onPage(words []model.Word, width, height float64) []model.Word {
	if width <= 0 || height <= 0 {
		return words
	}
	kept := words[:0]
	for _, w := range words {
		if visible(w.Box, width, height) {
			w.Box = w.Box.Clip(width, height)
			kept = append(kept, w)
		}
	}
	return kept
}

// visible reports whether a word overlaps the page at all. Text placed
// entirely outside the page is never rendered and is dropped.
func visible(b model.BBox, width, height float64) bool {
	if width <= 0 || height <= 0 {
		return true
	}
	return b.Right >= 0 && b.Left <= width && b.Bottom >= 0 && b.Top <= height
}
