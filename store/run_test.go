package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tsawler/examdown/markdown"
	"github.com/tsawler/examdown/model"
)

func testDocument() *markdown.Document {
	return &markdown.Document{
		Title:    "EXAME NACIONAL DO ENSINO MÉDIO",
		Source:   "prova.pdf",
		Metadata: model.Metadata{Year: "2013", Booklet: "Azul"},
		Sections: []markdown.Section{
			{
				Name: "CIÊNCIAS HUMANAS E SUAS TECNOLOGIAS",
				Questions: []markdown.RenderedQuestion{
					{Number: 1, Page: 2, Markdown: "## QUESTÃO 01\n\num dois três\n"},
					{Number: 2, Page: 3, Markdown: "## QUESTÃO 02\n\nquatro\n"},
				},
			},
			{
				Name:   "Questões",
				Orphan: true,
				Questions: []markdown.RenderedQuestion{
					{Number: 90, Page: 30, Markdown: "## QUESTÃO 90\n\nfim\n"},
				},
			},
		},
	}
}

func TestNewRun(t *testing.T) {
	words := CountFunc(func(s string) int { return len(strings.Fields(s)) })

	run, err := NewRun(testDocument(), words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.ID == uuid.Nil {
		t.Error("expected a run id")
	}
	if run.Source != "prova.pdf" || run.Metadata.Year != "2013" {
		t.Errorf("unexpected run header %+v", run)
	}
	if len(run.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(run.Questions))
	}

	tests := []struct {
		number int
		area   string
		page   int
		tokens int
	}{
		{1, "CIÊNCIAS HUMANAS E SUAS TECNOLOGIAS", 2, 6},
		{2, "CIÊNCIAS HUMANAS E SUAS TECNOLOGIAS", 3, 4},
		{90, "Questões", 30, 4},
	}
	seen := make(map[uuid.UUID]bool)
	for i, tt := range tests {
		q := run.Questions[i]
		if q.Number != tt.number || q.Area != tt.area || q.Page != tt.page || q.Tokens != tt.tokens {
			t.Errorf("question %d = %+v, want %+v", i, q, tt)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	if run.TotalTokens() != 14 {
		t.Errorf("TotalTokens() = %d, want 14", run.TotalTokens())
	}
}

func TestNewRun_NilCounter(t *testing.T) {
	run, err := NewRun(testDocument(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.TotalTokens() != 0 {
		t.Errorf("expected zero tokens, got %d", run.TotalTokens())
	}
}

type failingCounter struct{}

func (failingCounter) Count(string) (int, error) {
	return 0, errors.New("encoder unavailable")
}

func TestNewRun_CounterError(t *testing.T) {
	if _, err := NewRun(testDocument(), failingCounter{}); err == nil {
		t.Error("expected counter error")
	}
}

func TestNewRun_EmptyDocument(t *testing.T) {
	run, err := NewRun(&markdown.Document{Title: "x"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Questions) != 0 {
		t.Errorf("expected no questions, got %v", run.Questions)
	}
}
