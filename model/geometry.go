package model

import "math"

// BBox represents a bounding box in page points (origin top-left)
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBBox creates a bounding box from its four edges
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// Valid reports whether every edge is a finite number and the box is not
// inverted. Zero-width boxes are allowed; some extractors emit them for
// narrow glyphs.
func (b BBox) Valid() bool {
	for _, v := range [...]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Right >= b.Left && b.Bottom >= b.Top
}

// Within reports whether the box lies inside a page of the given size,
// allowing tolerance points of overflow on every side.
func (b BBox) Within(width, height, tolerance float64) bool {
	return b.Left >= -tolerance && b.Top >= -tolerance &&
		b.Right <= width+tolerance && b.Bottom <= height+tolerance
}

// Clip returns the part of the box inside a width x height page. A box
// wholly outside collapses onto the nearest page edge.
func (b BBox) Clip(width, height float64) BBox {
	clamp := func(v, hi float64) float64 { return math.Max(0, math.Min(v, hi)) }
	return BBox{
		Left:   clamp(b.Left, width),
		Top:    clamp(b.Top, height),
		Right:  clamp(b.Right, width),
		Bottom: clamp(b.Bottom, height),
	}
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Scale multiplies every edge by factor
func (b BBox) Scale(factor float64) BBox {
	return BBox{
		Left:   b.Left * factor,
		Top:    b.Top * factor,
		Right:  b.Right * factor,
		Bottom: b.Bottom * factor,
	}
}
