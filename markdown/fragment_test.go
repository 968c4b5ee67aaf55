package markdown

import (
	"strings"
	"testing"

	"github.com/tsawler/examdown/model"
)

// Helper to create page-1 lines from texts
func makeLines(texts ...string) []model.Line {
	lines := make([]model.Line, len(texts))
	for i, t := range texts {
		lines[i] = model.Line{Page: 1, Text: t}
	}
	return lines
}

func TestFormatQuestion_ParagraphAndChoices(t *testing.T) {
	got := FormatQuestion(1, makeLines("Enunciado de teste.", "A texto A", "B texto B"))
	want := "## QUESTÃO 01\n\nEnunciado de teste.\n\n- **A** texto A\n- **B** texto B\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatQuestion_Empty(t *testing.T) {
	got := FormatQuestion(1, nil)
	if got != "## QUESTÃO 01\n\n" {
		t.Errorf("unexpected fragment %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("fragment holds a blank run longer than one line")
	}
}

func TestFormatQuestion_Reference(t *testing.T) {
	got := FormatQuestion(12, makeLines(
		"Texto do enunciado.",
		"ASSIS, M. Dom Casmurro. Rio de Janeiro:",
		"editora   Garnier, 1899.",
		"Qual é a ideia central?",
		"A sim",
		"B não",
	))
	want := strings.Join([]string{
		"## QUESTÃO 12",
		"",
		"Texto do enunciado.",
		"",
		"> *ASSIS, M. Dom Casmurro. Rio de Janeiro: editora Garnier, 1899.*",
		"",
		"Qual é a ideia central?",
		"",
		"- **A** sim",
		"- **B** não",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatQuestion_SubHeadersAndFraming(t *testing.T) {
	got := FormatQuestion(2, makeLines(
		"TEXTO I",
		"Primeiro texto.",
		"TEXTO II",
		"Segundo texto.",
		"Questões de 1 a 45",
		"LINGUAGENS, CÓDIGOS E SUAS TECNOLOGIAS",
	))
	want := "## QUESTÃO 02\n\n**TEXTO I**\n\nPrimeiro texto.\n\n**TEXTO II**\n\nSegundo texto.\n\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatQuestion_ReferenceInsideChoicesIsText(t *testing.T) {
	got := FormatQuestion(3, makeLines("A alternativa", "ASSIS, M. Citação"))
	if strings.Contains(got, "> *") {
		t.Errorf("reference-like line after the choices must stay plain, got %q", got)
	}
	if !strings.Contains(got, "ASSIS, M. Citação") {
		t.Errorf("line lost: %q", got)
	}
}

func TestFormatQuestion_RepairsBrokenChoices(t *testing.T) {
	got := FormatQuestion(4, makeLines("Enunciado.", "A", "continuação da alternativa", "B outra", "que quebrou"))
	if !strings.Contains(got, "- **A** continuação da alternativa\n") {
		t.Errorf("letter-only choice not merged: %q", got)
	}
	if !strings.Contains(got, "- **B** outra que quebrou\n") {
		t.Errorf("continuation not merged: %q", got)
	}
}

func TestFormatQuestion_ThreeDigitNumber(t *testing.T) {
	got := FormatQuestion(136, nil)
	if !strings.HasPrefix(got, "## QUESTÃO 136\n") {
		t.Errorf("unexpected heading %q", got)
	}
}

func TestFormatQuestion_NoBlankRuns(t *testing.T) {
	inputs := [][]string{
		{"TEXTO I", "QUADRO", "A um"},
		{"ASSIS, M.", "TEXTO I", "", "   "},
		{"Disponível em: x.", "A um", "TABELA"},
	}
	for _, in := range inputs {
		got := FormatQuestion(9, makeLines(in...))
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("FormatQuestion(%v) has a blank run: %q", in, got)
		}
		if !strings.HasSuffix(got, "\n") {
			t.Errorf("FormatQuestion(%v) does not end with a newline", in)
		}
	}
}
