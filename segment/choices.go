package segment

import (
	"strings"
	"unicode"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/model"
)

// NormalizeChoices repairs lettered choices broken across lines.
//
// The first pass joins a letter left alone on its line with the line that
// follows it. The second pass appends lowercase continuation lines to the
// full choice they wrap from. Neither pass merges a line that mentions a
// question header, so merges never cross a question boundary. The merged
// line keeps the page of its first part.
func NormalizeChoices(lines []model.Line) []model.Line {
	return absorbContinuations(joinLoneLetters(lines))
}

// joinLoneLetters is the first pass: "A" followed by "texto" becomes
// "A texto".
func joinLoneLetters(lines []model.Line) []model.Line {
	out := make([]model.Line, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := classifier.Classify(lines[i].Text)
		if cur.Kind == classify.KindLetterOnly && i+1 < len(lines) {
			next := classifier.Classify(lines[i+1].Text)
			if next.Text != "" && !next.Has(classify.MentionQuestion) && !next.IsChoice() {
				out = append(out, model.Line{
					Page: lines[i].Page,
					Text: cur.Text + " " + next.Text,
				})
				i++
				continue
			}
		}
		out = append(out, lines[i])
	}
	return out
}

// absorbContinuations is the second pass: a full choice absorbs every
// following line that reads as the rest of its sentence.
func absorbContinuations(lines []model.Line) []model.Line {
	out := make([]model.Line, 0, len(lines))
	for i := 0; i < len(lines); {
		cur := classifier.Classify(lines[i].Text)
		if cur.Kind != classify.KindFullChoice || cur.Has(classify.MentionQuestion) {
			out = append(out, lines[i])
			i++
			continue
		}

		text := strings.TrimRightFunc(lines[i].Text, unicode.IsSpace)
		j := i + 1
		for ; j < len(lines); j++ {
			next := classifier.Classify(lines[j].Text)
			if !continuesChoice(next) {
				break
			}
			text += " " + next.Text
		}
		out = append(out, model.Line{Page: lines[i].Page, Text: text})
		i = j
	}
	return out
}

// continuesChoice reports whether l can be appended to an open choice
func continuesChoice(l classify.Line) bool {
	switch {
	case l.Text == "":
		return false
	case l.IsChoice():
		return false
	case l.Has(classify.MentionQuestion), l.Has(classify.MentionArea):
		return false
	case l.StartsUpper():
		return false
	}
	return true
}
