package examdown_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/examdown"
	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/source"
)

// These examples verify the README code samples compile correctly.
// Only Example_inMemory is run, the others require exam files.

func Example_extractMarkdown() {
	md, warnings, err := examdown.Open("Caderno1_Azul.pdf").Markdown()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(md)

	for _, w := range warnings {
		fmt.Println("Warning:", w)
	}
}

func Example_extractWithOptions() {
	doc, warnings, err := examdown.Open("Caderno1_Azul.pdf").
		PageRange(2, 31). // Skip the cover
		Workers(4).       // Lay out four pages at a time
		Document()
	if err != nil {
		log.Fatal(err)
	}
	for _, sec := range doc.Sections {
		fmt.Printf("%s: %d questions\n", sec.Name, len(sec.Questions))
	}
	_ = warnings
}

func Example_customConfig() {
	cfg := examdown.DefaultConfig()
	cfg.Lines.YTolerance = 3
	cfg.Assembler.DefaultTitle = "SIMULADO ENEM"

	md, _, err := examdown.Open("simulado.hocr").WithConfig(cfg).Markdown()
	if err != nil {
		log.Fatal(err)
	}
	_ = os.WriteFile("simulado.md", []byte(md), 0o644)
}

func Example_fromSource() {
	src, err := source.OpenJSON("words.json")
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	lines, _, err := examdown.FromSource(src).Lines()
	if err != nil {
		log.Fatal(err)
	}
	for i, l := range lines {
		fmt.Printf("[%03d] %s\n", i, l.Text)
	}
}

func Example_inMemory() {
	page := model.NewPage(1, 595, 842)
	page.AddWord("QUESTÃO", model.NewBBox(50, 60, 100, 70))
	page.AddWord("01", model.NewBBox(104, 60, 116, 70))
	page.AddWord("Enunciado.", model.NewBBox(50, 80, 110, 90))
	page.AddWord("A", model.NewBBox(50, 100, 56, 110))
	page.AddWord("sim", model.NewBBox(60, 100, 80, 110))

	blocks, _, err := examdown.FromSource(source.NewMemorySource(page)).Questions()
	if err != nil {
		log.Fatal(err)
	}
	for _, q := range blocks {
		fmt.Println(q.Number, len(q.Lines))
	}
	// Output: 1 2
}
