package source

import (
	"context"

	"github.com/tsawler/examdown/model"
)

// MemorySource serves pages held in memory
type MemorySource struct {
	pages []model.Page
}

// NewMemorySource creates a source over pages. Pages are renumbered from 1
// in slice order.
func NewMemorySource(pages ...model.Page) *MemorySource {
	out := make([]model.Page, len(pages))
	for i, p := range pages {
		p.Number = i + 1
		out[i] = p
	}
	return &MemorySource{pages: out}
}

// PageCount returns the number of pages
func (s *MemorySource) PageCount() int {
	return len(s.pages)
}

// Page returns page i
func (s *MemorySource) Page(ctx context.Context, i int) (model.Page, error) {
	if err := ctx.Err(); err != nil {
		return model.Page{}, err
	}
	if err := checkIndex(i, len(s.pages)); err != nil {
		return model.Page{}, err
	}
	return s.pages[i], nil
}

// Close is a no-op
func (s *MemorySource) Close() error {
	return nil
}
