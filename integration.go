// integration.go provides one-call entry points over the Extractor
package examdown

import (
	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/source"
)

// ExtractFile turns an exam file into Markdown with the default configuration.
// Page-level problems are not fatal; use Open(path).Markdown() to see them.
//
// Example:
//
//	md, err := examdown.ExtractFile("Caderno1_Azul.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("Caderno1_Azul.md", []byte(md), 0o644)
func ExtractFile(path string) (string, error) {
	md, _, err := Open(path).Markdown()
	return md, err
}

// ExtractFileWithConfig is ExtractFile with a custom pipeline configuration
func ExtractFileWithConfig(path string, config Config) (string, []Warning, error) {
	return Open(path).WithConfig(config).Markdown()
}

// Extract renders pages that are already in memory, e.g. words produced by
// another OCR engine.
//
// Example:
//
//	page := model.NewPage(1, 595, 842)
//	page.AddWord("QUESTÃO", model.NewBBox(50, 60, 100, 70))
//	page.AddWord("01", model.NewBBox(104, 60, 115, 70))
//	md, warnings, err := examdown.Extract(page)
func Extract(pages ...model.Page) (string, []Warning, error) {
	return FromSource(source.NewMemorySource(pages...)).Markdown()
}
