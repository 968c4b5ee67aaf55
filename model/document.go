package model

import "strings"

// Line is one visually reconstructed row of text
type Line struct {
	Page int    // 1-indexed page the line was built from
	Text string // Words joined by single spaces
}

// Texts returns the text of every line, in order
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// QuestionBlock pairs a question number with its raw lines
type QuestionBlock struct {
	Number int
	Lines  []Line
}

// FirstPage returns the page of the first line, or 0 for an empty block
func (q QuestionBlock) FirstPage() int {
	if len(q.Lines) == 0 {
		return 0
	}
	return q.Lines[0].Page
}

// Area is a named knowledge-area span over the global line sequence.
// Start is inclusive and End exclusive.
type Area struct {
	Name  string
	Start int
	End   int
}

// Metadata contains the best-effort document fields. Empty means not found.
type Metadata struct {
	Year    string `json:"year,omitempty"`
	Day     string `json:"day,omitempty"`
	Booklet string `json:"booklet,omitempty"`
	Title   string `json:"title,omitempty"`
}

// IsEmpty reports whether no field was found
func (m Metadata) IsEmpty() bool {
	return strings.TrimSpace(m.Year+m.Day+m.Booklet+m.Title) == ""
}
