// Package store persists extraction runs and their questions in PostgreSQL.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkoukk/tiktoken-go"

	"github.com/tsawler/examdown/markdown"
	"github.com/tsawler/examdown/model"
)

// Run is one extraction of one exam file
type Run struct {
	ID        uuid.UUID      `json:"id"`
	Source    string         `json:"source"`
	Title     string         `json:"title"`
	Metadata  model.Metadata `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	Questions []Question     `json:"questions"`
}

// Question is one rendered question of a run
type Question struct {
	ID       uuid.UUID `json:"id"`
	Number   int       `json:"number"`
	Area     string    `json:"area"`
	Page     int       `json:"page"`
	Markdown string    `json:"markdown"`
	Tokens   int       `json:"tokens"`
}

// TokenCounter measures rendered questions
type TokenCounter interface {
	Count(text string) (int, error)
}

// CountFunc adapts a plain function to TokenCounter
type CountFunc func(text string) int

func (f CountFunc) Count(text string) (int, error) {
	return f(text), nil
}

// TiktokenCounter counts BPE tokens with a tiktoken encoding
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the encoding used by model, e.g. "gpt-3.5-turbo"
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding for %s: %w", model, err)
	}
	return &TiktokenCounter{enc: enc}, nil
}

func (c *TiktokenCounter) Count(text string) (int, error) {
	return len(c.enc.Encode(text, nil, nil)), nil
}

// NewRun builds a run from an assembled document. Questions keep document
// order; each gets the name of its section as area. A nil counter leaves
// token counts at zero.
func NewRun(doc *markdown.Document, counter TokenCounter) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		Source:    doc.Source,
		Title:     doc.Title,
		Metadata:  doc.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	for _, sec := range doc.Sections {
		for _, q := range sec.Questions {
			tokens := 0
			if counter != nil {
				n, err := counter.Count(q.Markdown)
				if err != nil {
					return nil, fmt.Errorf("counting tokens of question %d: %w", q.Number, err)
				}
				tokens = n
			}
			run.Questions = append(run.Questions, Question{
				ID:       uuid.New(),
				Number:   q.Number,
				Area:     sec.Name,
				Page:     q.Page,
				Markdown: q.Markdown,
				Tokens:   tokens,
			})
		}
	}
	return run, nil
}

// TotalTokens sums the token counts of every question
func (r *Run) TotalTokens() int {
	total := 0
	for _, q := range r.Questions {
		total += q.Tokens
	}
	return total
}
