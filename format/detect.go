// Package format tells the supported inputs apart by extension or content.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format is an input kind the pipeline can read words from.
type Format int

const (
	Unknown Format = iota
	PDF            // text-layer PDF
	HOCR           // Tesseract hOCR (HTML with ocr_page/ocrx_word)
	Image          // page scan that needs OCR
	JSON           // positioned word dump
)

var formatInfo = [...]struct {
	name, ext string
}{
	Unknown: {"Unknown", ""},
	PDF:     {"PDF", ".pdf"},
	HOCR:    {"HOCR", ".hocr"},
	Image:   {"Image", ".png"},
	JSON:    {"JSON", ".json"},
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return formatInfo[Unknown].name
	}
	return formatInfo[f].name
}

// Extension is the canonical file extension, or "" for Unknown.
func (f Format) Extension() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return ""
	}
	return formatInfo[f].ext
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".hocr", ".html", ".htm":
		return HOCR
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp":
		return Image
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from them alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case isImageMagic(data):
		return Image
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' {
		return JSON
	}
	if detectHOCRMagic(trimmed) {
		return HOCR
	}

	return Unknown
}

// isImageMagic recognises the raster formats the image source decodes
func isImageMagic(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return true
	case bytes.HasPrefix(data, []byte("BM")):
		return true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return true
	}
	return false
}

// detectHOCRMagic checks whether HTML content carries hOCR classes. Plain
// HTML without them is not an accepted input.
func detectHOCRMagic(data []byte) bool {
	upper := strings.ToUpper(string(data))
	isHTML := strings.HasPrefix(upper, "<!DOCTYPE HTML") ||
		strings.HasPrefix(upper, "<HTML") ||
		(strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML"))
	if !isHTML {
		return false
	}
	return strings.Contains(upper, "OCR_PAGE") || strings.Contains(upper, "OCR-SYSTEM")
}

// sniffLen is how much of a file DetectFromReader inspects
const sniffLen = 2048

// DetectFromReader inspects the content to determine format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, sniffLen)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
