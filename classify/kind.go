package classify

import "unicode"

// Kind is the structural role of a line
type Kind int

const (
	KindBlank      Kind = iota // Empty after trimming
	KindNoise                  // Page chrome (running headers, page numbers, ...)
	KindHeader                 // Question header carrying a number
	KindSubHeader              // TEXTO I, QUADRO, TABELA, FIGURA, GRÁFICO
	KindFullChoice             // Letter A-E followed by text
	KindLetterOnly             // Letter A-E alone
	KindReference              // Bibliographic reference
	KindPlain                  // Anything else
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindNoise:
		return "noise"
	case KindHeader:
		return "header"
	case KindSubHeader:
		return "subheader"
	case KindFullChoice:
		return "choice"
	case KindLetterOnly:
		return "letter"
	case KindReference:
		return "reference"
	case KindPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Mention flags record what a line contains anywhere in its text
type Mention uint8

const (
	MentionQuestion Mention = 1 << iota // A question header appears somewhere
	MentionArea                         // A knowledge-area header appears somewhere
	MentionRange                        // A "Questões de N a M" announcement appears somewhere
)

// Line is a classified line
type Line struct {
	// Text is the trimmed line
	Text string

	// Kind is the role decided by the first matching rule
	Kind Kind

	// Number is the question number for KindHeader lines
	Number int

	// Letter and Body are set for KindFullChoice (Body empty for KindLetterOnly)
	Letter string
	Body   string

	// Mentions is a set of Mention flags
	Mentions Mention
}

// Has reports whether the line mentions m
func (l Line) Has(m Mention) bool {
	return l.Mentions&m != 0
}

// IsChoice reports whether the line is a full or letter-only choice
func (l Line) IsChoice() bool {
	return l.Kind == KindFullChoice || l.Kind == KindLetterOnly
}

// StartsUpper reports whether the first rune is an uppercase letter
func (l Line) StartsUpper() bool {
	for _, r := range l.Text {
		return unicode.IsUpper(r)
	}
	return false
}

// ContinuesReference reports whether the line reads as the wrapped tail of a
// reference: it starts with a lowercase letter or an opening parenthesis.
func (l Line) ContinuesReference() bool {
	return referenceTail.MatchString(l.Text)
}
