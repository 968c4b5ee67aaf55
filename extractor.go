package examdown

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/layout"
	"github.com/tsawler/examdown/markdown"
	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/segment"
	"github.com/tsawler/examdown/source"
)

// ErrNoText is returned when none of the selected pages holds a word with
// visible text
var ErrNoText = errors.New("no extractable text on any page")

// Extractor provides a fluent interface for turning an exam into Markdown.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	name     string // shown in the document citation line
	src      source.Source

	// Lifecycle
	ownsSource bool // true if we opened the source and should close it
	srcOpened  bool // true if the source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		name:       e.name,
		src:        e.src,
		ownsSource: e.ownsSource,
		srcOpened:  e.srcOpened,
		options:    e.options.clone(),
		err:        e.err,
		warnings:   append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.srcOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := source.Open(e.filename, e.options.config.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.filename, err)
	}
	e.src = src
	e.ownsSource = true
	e.srcOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.src != nil {
		err := e.src.Close()
		e.src = nil
		e.ownsSource = false
		e.srcOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	md, _, err := examdown.Open("prova.pdf").Pages(2, 3, 5).Markdown()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	md, _, err := examdown.Open("prova.pdf").PageRange(5, 10).Markdown()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithConfig replaces the configuration of every pipeline stage.
//
// Example:
//
//	cfg := examdown.DefaultConfig()
//	cfg.Lines.YTolerance = 3
//	md, _, err := examdown.Open("prova.pdf").WithConfig(cfg).Markdown()
func (e *Extractor) WithConfig(config Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	newExt.options = newExt.options.clone()
	return newExt
}

// Workers limits how many pages are laid out concurrently. Values below 1
// mean one worker.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = max(1, n)
	return newExt
}

// Context sets the context checked while reading and laying out pages.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx == nil {
		ctx = context.Background()
	}
	newExt.options.ctx = ctx
	return newExt
}

// Named sets the file name shown in the document citation line. Open uses
// the file path by default.
func (e *Extractor) Named(name string) *Extractor {
	newExt := e.clone()
	newExt.name = name
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the source, allowing further operations.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.src.PageCount(), nil
}

// Lines returns the cleaned, reading-order line sequence that segmentation
// works on. It is a diagnostic view: Markdown() is built from the same lines.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) Lines() ([]model.Line, []Warning, error) {
	res, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return res.lines, res.warnings, nil
}

// Questions returns every question block found in the whole line sequence,
// in ascending question order.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) Questions() ([]model.QuestionBlock, []Warning, error) {
	res, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return segment.SplitQuestions(res.lines), res.warnings, nil
}

// Document assembles the structured document: metadata, areas and rendered
// questions, along with its Markdown text.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	doc, warnings, err := examdown.Open("prova.pdf").Document()
//	for _, sec := range doc.Sections {
//	    fmt.Println(sec.Name, len(sec.Questions))
//	}
func (e *Extractor) Document() (*markdown.Document, []Warning, error) {
	res, err := e.run()
	if err != nil {
		return nil, nil, err
	}

	meta := segment.ExtractMetadata(model.Texts(res.raw), e.options.config.Metadata)
	assembler := markdown.NewAssemblerWithConfig(e.options.config.Assembler)
	doc := assembler.Assemble(markdown.Input{
		Source:   e.name,
		Lines:    res.lines,
		Metadata: meta,
		Areas:    segment.FindAreas(res.lines),
	})

	warnings := res.warnings
	if doc.QuestionCount() == 0 {
		warnings = append(warnings, Warning{Message: "no question header found"})
	}
	return doc, warnings, nil
}

// Markdown returns the Markdown text of the document.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	md, warnings, err := examdown.Open("prova.pdf").Markdown()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", examdown.FormatWarnings(warnings))
//	}
func (e *Extractor) Markdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	return doc.Markdown, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// result is the output of the page-level stages
type result struct {
	raw      []model.Line // repaired, before noise removal
	lines    []model.Line // cleaned
	warnings []Warning
}

// run reads the selected pages, lays them out concurrently and cleans the
// concatenated line sequence.
func (e *Extractor) run() (*result, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	ctx := e.options.ctx
	pageIndices, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	warnings := append([]Warning(nil), e.warnings...)

	// Sources are not safe for concurrent use; read them in order
	pages := make([]model.Page, len(pageIndices))
	words := 0
	for i, idx := range pageIndices {
		page, err := e.src.Page(ctx, idx)
		if err != nil {
			if !errors.Is(err, source.ErrPageContent) {
				return nil, fmt.Errorf("page %d: %w", idx+1, err)
			}
			warnings = append(warnings, Warning{Page: idx + 1, Message: err.Error()})
			page = model.NewPage(idx+1, 0, 0)
		}
		pages[i] = page
		words += textWords(page)
	}
	if words == 0 {
		return nil, ErrNoText
	}

	perPage, layoutWarnings, err := e.layoutPages(ctx, pages)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, layoutWarnings...)

	noise := classify.NewNoiseFilterWithConfig(e.options.config.Noise)
	res := &result{warnings: warnings}
	for _, lines := range perPage {
		for _, l := range lines {
			res.raw = append(res.raw, model.Line{Page: l.Page, Text: noise.Repair(l.Text)})
		}
	}
	res.lines = noise.Clean(res.raw)
	return res, nil
}

// textWords counts the words of page that are not blank
func textWords(page model.Page) int {
	n := 0
	for _, w := range page.Words {
		if strings.TrimSpace(w.Text) != "" {
			n++
		}
	}
	return n
}

// layoutPages builds the lines of every page with a bounded worker pool.
// Results keep page order. A malformed page contributes no lines and a
// warning.
func (e *Extractor) layoutPages(ctx context.Context, pages []model.Page) ([][]model.Line, []Warning, error) {
	builder := layout.NewLineBuilderWithConfig(e.options.config.Lines, e.options.config.Columns)

	lines := make([][]model.Line, len(pages))
	problems := make([]error, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, e.options.workers))
	for i := range pages {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines[i], problems[i] = builder.PageLines(pages[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for i, err := range problems {
		if err != nil {
			warnings = append(warnings, Warning{Page: pages[i].Number, Message: err.Error()})
		}
	}
	return lines, warnings, nil
}

// resolvePages converts 1-indexed page numbers to 0-indexed and validates them.
// If no pages specified, returns all pages.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.src.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	// Sort pages in order
	sort.Ints(pageIndices)
	return pageIndices, nil
}
