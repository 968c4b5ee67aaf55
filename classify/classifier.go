package classify

import (
	"strconv"
	"strings"
)

// rule assigns kind when match succeeds; match may fill extra fields
type rule struct {
	kind  Kind
	match func(l *Line) bool
}

// Classifier evaluates the ordered rule table for a line
type Classifier struct {
	noise *NoiseFilter
	rules []rule
}

// NewClassifier creates a classifier using the default noise patterns
func NewClassifier() *Classifier {
	return NewClassifierWithNoise(NewNoiseFilter())
}

// NewClassifierWithNoise creates a classifier using a custom noise filter
func NewClassifierWithNoise(noise *NoiseFilter) *Classifier {
	if noise == nil {
		noise = NewNoiseFilter()
	}
	c := &Classifier{noise: noise}
	c.rules = []rule{
		{KindBlank, func(l *Line) bool { return l.Text == "" }},
		{KindNoise, func(l *Line) bool { return c.noise.matches(l.Text) }},
		{KindHeader, matchHeader},
		{KindSubHeader, func(l *Line) bool { return subHeader.MatchString(l.Text) }},
		{KindFullChoice, matchFullChoice},
		{KindLetterOnly, matchLetterOnly},
		{KindReference, func(l *Line) bool { return IsReference(l.Text) }},
	}
	return c
}

// Classify returns the classification of a single line
func (c *Classifier) Classify(text string) Line {
	l := Line{Text: strings.TrimSpace(text), Kind: KindPlain}

	if headerSearch.MatchString(l.Text) {
		l.Mentions |= MentionQuestion
	}
	if areaHeader.MatchString(l.Text) {
		l.Mentions |= MentionArea
	}
	if rangeHint.MatchString(l.Text) {
		l.Mentions |= MentionRange
	}

	for _, r := range c.rules {
		if r.match(&l) {
			l.Kind = r.kind
			break
		}
	}
	return l
}

// ClassifyAll classifies every line in order
func (c *Classifier) ClassifyAll(texts []string) []Line {
	out := make([]Line, len(texts))
	for i, t := range texts {
		out[i] = c.Classify(t)
	}
	return out
}

// Noise returns the noise filter used by the classifier
func (c *Classifier) Noise() *NoiseFilter {
	return c.noise
}

// matchHeader accepts a line that is exactly a header, or that starts with a
// header spelling and carries the header pattern from its first character.
// Number zero is never a question.
func matchHeader(l *Line) bool {
	m := headerExact.FindStringSubmatch(l.Text)
	if m == nil && hasHeaderPrefix(l.Text) {
		if loc := headerSearch.FindStringSubmatchIndex(l.Text); loc != nil && loc[0] == 0 {
			m = []string{l.Text[loc[0]:loc[1]], l.Text[loc[2]:loc[3]]}
		}
	}
	if m == nil {
		return false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return false
	}
	l.Number = n
	return true
}

func hasHeaderPrefix(s string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func matchFullChoice(l *Line) bool {
	m := fullChoice.FindStringSubmatch(l.Text)
	if m == nil {
		return false
	}
	l.Letter = m[1]
	l.Body = strings.TrimSpace(m[2])
	return true
}

func matchLetterOnly(l *Line) bool {
	m := letterOnly.FindStringSubmatch(l.Text)
	if m == nil {
		return false
	}
	l.Letter = m[1]
	return true
}

// IsReference reports whether s looks like a bibliographic reference
func IsReference(s string) bool {
	s = strings.TrimSpace(s)
	return referenceAuthor.MatchString(s) || referenceMarker.MatchString(s)
}
