package format

import (
	"bytes"
	"testing"
)

func TestFormatNames(t *testing.T) {
	tests := []struct {
		format    Format
		name, ext string
	}{
		{PDF, "PDF", ".pdf"},
		{HOCR, "HOCR", ".hocr"},
		{Image, "Image", ".png"},
		{JSON, "JSON", ".json"},
		{Unknown, "Unknown", ""},
		{Format(99), "Unknown", ""},
		{Format(-1), "Unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.name)
		}
		if got := tt.format.Extension(); got != tt.ext {
			t.Errorf("Format(%d).Extension() = %q, want %q", int(tt.format), got, tt.ext)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"prova.pdf", PDF},
		{"prova.PDF", PDF},
		{"prova.hocr", HOCR},
		{"prova.html", HOCR},
		{"prova.HTM", HOCR},
		{"pagina1.png", Image},
		{"pagina1.JPG", Image},
		{"pagina1.jpeg", Image},
		{"pagina1.tif", Image},
		{"pagina1.tiff", Image},
		{"pagina1.bmp", Image},
		{"pagina1.webp", Image},
		{"palavras.json", JSON},
		{"prova.docx", Unknown},
		{"prova", Unknown},
		{"", Unknown},
		{"/path/to/Caderno1_Azul.pdf", PDF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PDF magic bytes",
			data: []byte("%PDF-1.4"),
			want: PDF,
		},
		{
			name: "PNG",
			data: []byte("\x89PNG\r\n\x1a\n"),
			want: Image,
		},
		{
			name: "JPEG",
			data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00},
			want: Image,
		},
		{
			name: "TIFF little endian",
			data: []byte("II*\x00\x08\x00"),
			want: Image,
		},
		{
			name: "WebP",
			data: []byte("RIFF\x00\x00\x00\x00WEBPVP8 "),
			want: Image,
		},
		{
			name: "JSON word dump",
			data: []byte("  \n{\"pages\": []}"),
			want: JSON,
		},
		{
			name: "hOCR",
			data: []byte(`<!DOCTYPE html><html><body><div class="ocr_page" title="bbox 0 0 10 10">`),
			want: HOCR,
		},
		{
			name: "plain HTML",
			data: []byte("<html><head><title>x</title></head></html>"),
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "short data",
			data: []byte{0x50, 0x4B},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"PDF", "%PDF-1.4\n%%EOF", PDF},
		{"JSON", `{"pages":[{"width":600,"height":800,"words":[]}]}`, JSON},
		{"unknown", "Hello, World! This is plain text.", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader([]byte(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}
