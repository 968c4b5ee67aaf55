package classify

import "testing"

func TestClassify_Kinds(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"blank", "   ", KindBlank},
		{"page number", "17", KindNoise},
		{"header", "QUESTÃO 01", KindHeader},
		{"header lower", "Questão 45", KindHeader},
		{"header no accent", "QUESTAO 7", KindHeader},
		{"header with debris", "QUESTÃO 12 ...", KindHeader},
		{"header mid-line", "Leia a QUESTÃO 12", KindPlain},
		{"header zero", "QUESTÃO 0", KindPlain},
		{"header four digits", "QUESTÃO 1234", KindPlain},
		{"sub-header", "TEXTO II", KindSubHeader},
		{"sub-header table", "tabela", KindSubHeader},
		{"full choice", "A texto A", KindFullChoice},
		{"letter only", "C", KindLetterOnly},
		{"letter F", "F texto", KindPlain},
		{"reference author", "ASSIS, M. Dom Casmurro.", KindReference},
		{"reference marker", "Disponível em: www.exemplo.org.", KindReference},
		{"plain", "Enunciado de teste.", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.text, got.Kind, tt.want)
			}
		})
	}
}

func TestClassify_HeaderNumber(t *testing.T) {
	c := NewClassifier()

	l := c.Classify("  QUESTÃO 07  ")
	if l.Kind != KindHeader || l.Number != 7 {
		t.Fatalf("expected header 7, got %v %d", l.Kind, l.Number)
	}
	if l.Text != "QUESTÃO 07" {
		t.Errorf("expected trimmed text, got %q", l.Text)
	}

	l = c.Classify("QUESTÃO 93 (Enem)")
	if l.Kind != KindHeader || l.Number != 93 {
		t.Errorf("expected fallback header 93, got %v %d", l.Kind, l.Number)
	}

	// Fallback prefixes are case-sensitive
	l = c.Classify("questão 5 trata de")
	if l.Kind == KindHeader {
		t.Error("lowercase prefix with trailing text should not be a header")
	}
}

func TestClassify_Choice(t *testing.T) {
	c := NewClassifier()

	l := c.Classify("B  segunda alternativa ")
	if l.Kind != KindFullChoice {
		t.Fatalf("expected full choice, got %v", l.Kind)
	}
	if l.Letter != "B" || l.Body != "segunda alternativa" {
		t.Errorf("unexpected letter/body %q/%q", l.Letter, l.Body)
	}

	l = c.Classify("E ")
	if l.Kind != KindLetterOnly || l.Letter != "E" {
		t.Errorf("expected letter-only E, got %v %q", l.Kind, l.Letter)
	}
	if !l.IsChoice() {
		t.Error("letter-only line should be a choice")
	}
}

func TestClassify_Mentions(t *testing.T) {
	c := NewClassifier()

	l := c.Classify("CIÊNCIAS HUMANAS E SUAS TECNOLOGIAS")
	if !l.Has(MentionArea) {
		t.Error("expected area mention")
	}

	l = c.Classify("Questões de 1 a 45")
	if !l.Has(MentionRange) || l.Has(MentionArea) {
		t.Errorf("unexpected mentions %b", l.Mentions)
	}

	l = c.Classify("a resposta da QUESTÃO 12 anterior")
	if !l.Has(MentionQuestion) || l.Kind == KindHeader {
		t.Errorf("expected a question mention without header kind, got %v %b", l.Kind, l.Mentions)
	}
}

func TestLine_StartsUpperAndContinuation(t *testing.T) {
	c := NewClassifier()

	if !c.Classify("Ética").StartsUpper() {
		t.Error("expected uppercase start for accented capital")
	}
	if c.Classify("ética").StartsUpper() {
		t.Error("expected lowercase start")
	}
	if !c.Classify("(org.). São Paulo").ContinuesReference() {
		t.Error("parenthesis should continue a reference")
	}
	if c.Classify("Texto seguinte").ContinuesReference() {
		t.Error("uppercase line should not continue a reference")
	}
}

func TestClassifyAll(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifyAll([]string{"QUESTÃO 1", "A", "texto"})
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	want := []Kind{KindHeader, KindLetterOnly, KindPlain}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("line %d: got %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindFullChoice.String() != "choice" {
		t.Errorf("unexpected %q", KindFullChoice.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("unexpected %q", Kind(99).String())
	}
}
