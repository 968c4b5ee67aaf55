package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/segment"
)

var classifier = classify.NewClassifier()

// formatState is where the formatter stands inside a question
type formatState int

const (
	statePlain       formatState = iota
	stateInReference             // collecting a bibliographic reference
	stateInChoices               // after the first lettered choice
)

// fragment accumulates the output of one question
type fragment struct {
	out       []string
	paragraph []string
	reference []string
	state     formatState
}

// FormatQuestion renders the raw lines of one question. Broken choices are
// repaired first. The result always starts with the question heading, never
// holds two blank lines in a row and ends with a newline.
func FormatQuestion(number int, lines []model.Line) string {
	f := &fragment{
		out: []string{fmt.Sprintf("## QUESTÃO %02d", number), ""},
	}

	for _, l := range segment.NormalizeChoices(lines) {
		f.add(classifier.Classify(l.Text))
	}

	f.flushParagraph()
	f.flushReference()

	return strings.Join(collapseBlanks(f.out), "\n") + "\n"
}

func (f *fragment) add(l classify.Line) {
	switch l.Kind {
	case classify.KindBlank, classify.KindNoise:
		return
	case classify.KindSubHeader:
		f.flushParagraph()
		f.flushReference()
		f.out = append(f.out, "**"+l.Text+"**", "")
		f.state = statePlain
		return
	}

	// Area and range announcements frame the document, not the question
	if l.Has(classify.MentionArea) || l.Has(classify.MentionRange) {
		return
	}

	if l.Kind == classify.KindFullChoice {
		f.flushParagraph()
		f.flushReference()
		if f.state != stateInChoices {
			f.state = stateInChoices
			if last := f.out[len(f.out)-1]; last != "" {
				f.out = append(f.out, "")
			}
		}
		f.out = append(f.out, fmt.Sprintf("- **%s** %s", l.Letter, l.Body))
		return
	}

	if l.Kind == classify.KindReference && f.state != stateInChoices {
		f.flushParagraph()
		f.reference = append(f.reference, l.Text)
		f.state = stateInReference
		return
	}

	if f.state == stateInReference {
		if l.Kind == classify.KindReference || l.ContinuesReference() {
			f.reference = append(f.reference, l.Text)
			return
		}
		f.flushReference()
	}

	f.paragraph = append(f.paragraph, l.Text)
}

// flushParagraph writes the open paragraph as one block
func (f *fragment) flushParagraph() {
	if len(f.paragraph) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(f.paragraph, " "))
	if text != "" {
		f.out = append(f.out, text, "")
	}
	f.paragraph = nil
}

// flushReference writes the open reference as an italic quote and leaves the
// reference state.
func (f *fragment) flushReference() {
	if len(f.reference) == 0 {
		return
	}
	ref := strings.Join(strings.Fields(strings.Join(f.reference, " ")), " ")
	f.out = append(f.out, "> *"+ref+"*", "")
	f.reference = nil
	if f.state == stateInReference {
		f.state = statePlain
	}
}

// collapseBlanks drops every blank line that follows another blank line
func collapseBlanks(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		blank := l == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, l)
		prevBlank = blank
	}
	return out
}
