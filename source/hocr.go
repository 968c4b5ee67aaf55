package source

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/examdown/model"
)

// OpenHOCR reads Tesseract hOCR output from a file
func OpenHOCR(path string) (*MemorySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadHOCR(f)
}

// ReadHOCR parses hOCR. Every ocr_page element becomes a page sized by its
// bbox, every ocrx_word a word. Pixel coordinates are converted to points
// when the page declares its scan_res.
func ReadHOCR(r io.Reader) (*MemorySource, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var pages []model.Page
	for _, n := range findByClass(doc, "ocr_page") {
		pages = append(pages, parseHOCRPage(n, len(pages)+1))
	}
	return NewMemorySource(pages...), nil
}

// parseHOCRPage converts one ocr_page element
func parseHOCRPage(n *html.Node, number int) model.Page {
	props := parseTitle(attr(n, "title"))

	scale := 1.0
	if res := props["scan_res"]; len(res) > 0 && res[0] > 0 {
		scale = 72.0 / res[0]
	}

	page := model.NewPage(number, 0, 0)
	if box, ok := bboxOf(props); ok {
		box = box.Scale(scale)
		page.Width, page.Height = box.Width(), box.Height()
	}

	for _, w := range findByClass(n, "ocrx_word") {
		text := strings.TrimSpace(textContent(w))
		if text == "" {
			continue
		}
		box, ok := bboxOf(parseTitle(attr(w, "title")))
		if !ok {
			continue
		}
		page.AddWord(text, box.Scale(scale))
	}
	return page
}

// parseTitle splits an hOCR title attribute ("bbox 0 0 10 10; x_wconf 93")
// into numeric properties. Non-numeric values such as image paths are
// ignored.
func parseTitle(title string) map[string][]float64 {
	props := make(map[string][]float64)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			continue
		}
		var values []float64
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				values = nil
				break
			}
			values = append(values, v)
		}
		if values != nil {
			props[fields[0]] = values
		}
	}
	return props
}

func bboxOf(props map[string][]float64) (model.BBox, bool) {
	b := props["bbox"]
	if len(b) != 4 {
		return model.BBox{}, false
	}
	return model.NewBBox(b[0], b[1], b[2], b[3]), true
}

// findByClass returns the elements under n carrying class, in document
// order. Matching elements are not searched further.
func findByClass(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates the text nodes below n
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
