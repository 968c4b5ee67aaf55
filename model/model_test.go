package model

import (
	"math"
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 70)
	if b.Width() != 100 {
		t.Errorf("Width() = %v, want 100", b.Width())
	}
	if b.Height() != 50 {
		t.Errorf("Height() = %v, want 50", b.Height())
	}
}

func TestBBoxValid(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want bool
	}{
		{"normal", NewBBox(0, 0, 10, 10), true},
		{"zero width", NewBBox(5, 0, 5, 10), true},
		{"inverted x", NewBBox(10, 0, 5, 10), false},
		{"inverted y", NewBBox(0, 10, 5, 0), false},
		{"NaN", NewBBox(math.NaN(), 0, 5, 10), false},
		{"Inf", NewBBox(0, 0, math.Inf(1), 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxWithin(t *testing.T) {
	b := NewBBox(10, 10, 600, 800)
	if !b.Within(612, 792, 10) {
		t.Error("expected box to fit with tolerance")
	}
	if b.Within(612, 792, 0) {
		t.Error("expected box to overflow without tolerance")
	}
}

func TestBBoxUnionAndScale(t *testing.T) {
	u := NewBBox(10, 10, 20, 20).Union(NewBBox(5, 15, 30, 18))
	want := NewBBox(5, 10, 30, 20)
	if u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}

	s := NewBBox(300, 300, 600, 600).Scale(72.0 / 300.0)
	if math.Abs(s.Left-72) > 1e-9 || math.Abs(s.Bottom-144) > 1e-9 {
		t.Errorf("Scale() = %+v", s)
	}
}

// ============================================================================
// Page / Line Tests
// ============================================================================

func TestBBoxClip(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want BBox
	}{
		{"inside", NewBBox(10, 10, 50, 20), NewBBox(10, 10, 50, 20)},
		{"right bleed", NewBBox(590, 100, 620, 110), NewBBox(590, 100, 612, 110)},
		{"top and left bleed", NewBBox(-4, -2, 30, 8), NewBBox(0, 0, 30, 8)},
		{"bottom bleed", NewBBox(50, 785, 90, 797), NewBBox(50, 785, 90, 792)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.Clip(612, 792)
			if got != tt.want {
				t.Errorf("Clip() = %+v, want %+v", got, tt.want)
			}
			if !got.Within(612, 792, 0) || !got.Valid() {
				t.Errorf("clipped box %+v not on page", got)
			}
		})
	}
}

func TestPageAddWord(t *testing.T) {
	p := NewPage(1, 595, 842)
	if !p.HasSize() {
		t.Error("expected page size to be known")
	}
	p.AddWord("QUESTÃO", NewBBox(50, 60, 100, 70))
	p.AddWord("01", NewBBox(104, 60, 115, 70))
	if len(p.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(p.Words))
	}
	if p.Words[1].Text != "01" {
		t.Errorf("unexpected word %q", p.Words[1].Text)
	}

	var unknown Page
	if unknown.HasSize() {
		t.Error("zero page should not report a size")
	}
}

func TestTextsAndFirstPage(t *testing.T) {
	lines := []Line{{Page: 2, Text: "a"}, {Page: 3, Text: "b"}}
	got := Texts(lines)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Texts() = %v", got)
	}

	q := QuestionBlock{Number: 4, Lines: lines}
	if q.FirstPage() != 2 {
		t.Errorf("FirstPage() = %d, want 2", q.FirstPage())
	}
	if (QuestionBlock{}).FirstPage() != 0 {
		t.Error("empty block should report page 0")
	}
}

func TestMetadataIsEmpty(t *testing.T) {
	if !(Metadata{}).IsEmpty() {
		t.Error("zero metadata should be empty")
	}
	if (Metadata{Year: "2013"}).IsEmpty() {
		t.Error("metadata with a year should not be empty")
	}
}
