package model

// Word is the smallest positioned text unit extracted from a page
type Word struct {
	Text string
	Box  BBox
}

// Page holds the words of a single page
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points (0 when unknown)
	Height float64 // Page height in points (0 when unknown)
	Words  []Word  // Words in rendering order
}

// NewPage creates an empty page with the given dimensions
func NewPage(number int, width, height float64) Page {
	return Page{
		Number: number,
		Width:  width,
		Height: height,
		Words:  make([]Word, 0),
	}
}

// AddWord appends a word to the page
func (p *Page) AddWord(text string, box BBox) {
	p.Words = append(p.Words, Word{Text: text, Box: box})
}

// HasSize reports whether the page dimensions are known
func (p Page) HasSize() bool {
	return p.Width > 0 && p.Height > 0
}
