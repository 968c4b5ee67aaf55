package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/examdown/model"
)

// jsonDocument is a pdfplumber-style word dump:
//
//	{"pages": [{"width": 595, "height": 842,
//	            "words": [{"text": "QUESTÃO", "x0": 50, "top": 60, "x1": 100, "bottom": 70}]}]}
type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

type jsonPage struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Words  []jsonWord `json:"words"`
}

type jsonWord struct {
	Text   string  `json:"text"`
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	X1     float64 `json:"x1"`
	Bottom float64 `json:"bottom"`
}

// OpenJSON reads a JSON word dump from a file
func OpenJSON(path string) (*MemorySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadJSON(f)
}

// ReadJSON reads a JSON word dump
func ReadJSON(r io.Reader) (*MemorySource, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding word dump: %w", err)
	}

	pages := make([]model.Page, len(doc.Pages))
	for i, jp := range doc.Pages {
		p := model.NewPage(i+1, jp.Width, jp.Height)
		for _, w := range jp.Words {
			p.AddWord(w.Text, model.NewBBox(w.X0, w.Top, w.X1, w.Bottom))
		}
		pages[i] = p
	}
	return NewMemorySource(pages...), nil
}

// WriteJSON writes the pages of src as a JSON word dump
func WriteJSON(ctx context.Context, w io.Writer, src Source) error {
	doc := jsonDocument{Pages: make([]jsonPage, src.PageCount())}
	for i := range doc.Pages {
		p, err := src.Page(ctx, i)
		if err != nil {
			return fmt.Errorf("reading page %d: %w", i+1, err)
		}
		jp := jsonPage{Width: p.Width, Height: p.Height, Words: make([]jsonWord, len(p.Words))}
		for j, word := range p.Words {
			jp.Words[j] = jsonWord{
				Text:   word.Text,
				X0:     word.Box.Left,
				Top:    word.Box.Top,
				X1:     word.Box.Right,
				Bottom: word.Box.Bottom,
			}
		}
		doc.Pages[i] = jp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding word dump: %w", err)
	}
	return nil
}
