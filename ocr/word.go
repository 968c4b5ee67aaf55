// Package ocr recognises the words of scanned exam pages through Tesseract.
//
// The engine is only linked in with the "ocr" build tag, which needs
// Tesseract and its Portuguese data installed (tesseract-ocr-por on
// Debian, tesseract-lang on Homebrew). Without the tag every call fails
// with ErrOCRNotEnabled.
package ocr

import (
	"errors"
	"image"
)

// Word is one recognised word in image pixel coordinates.
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64 // 0-100 as reported by Tesseract
}

// DefaultLanguage is the Tesseract language used for exam booklets.
const DefaultLanguage = "por"

// ErrOCRNotEnabled means the binary was built without the ocr tag.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
