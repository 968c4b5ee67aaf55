// Package examdown reconstructs exam questions from positioned page text and
// renders them as Markdown.
//
// Basic usage:
//
//	md, warnings, err := examdown.Open("Caderno1_Azul.pdf").Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", examdown.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := examdown.Open("prova.pdf").
//	    PageRange(2, 20).
//	    Workers(4).
//	    Document()
//
// The pipeline runs in stages, each in its own package: layout rebuilds
// reading-order lines from word boxes, classify removes page chrome, segment
// splits the line stream into questions and knowledge areas, and markdown
// renders the result. Word sources (PDF, hOCR, page scans, JSON dumps) live
// in the source package.
package examdown

import (
	"github.com/tsawler/examdown/source"
)

// Open opens an exam file and returns an Extractor for fluent configuration.
// The format is chosen by source.Open. The returned Extractor must be closed
// when done, either explicitly via Close() or implicitly when calling a
// terminal operation like Markdown().
//
// Example:
//
//	md, warnings, err := examdown.Open("prova.pdf").Markdown()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		name:     filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-opened word source.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	src, err := source.OpenHOCR("prova.hocr")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	md, warnings, err := examdown.FromSource(src).Named("prova.hocr").Markdown()
func FromSource(src source.Source) *Extractor {
	return &Extractor{
		src:        src,
		ownsSource: false,
		srcOpened:  true,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := examdown.Must(examdown.Open("prova.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a terminal operation such as Markdown()
// and panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	md := examdown.MustValue(examdown.Open("prova.pdf").Markdown())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
