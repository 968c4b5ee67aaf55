package markdown

import (
	"path/filepath"
	"strings"

	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/segment"
)

// AssemblerConfig holds configuration for document assembly
type AssemblerConfig struct {
	// DefaultTitle is used when the metadata carries no title
	// Default: "EXAME NACIONAL DO ENSINO MÉDIO"
	DefaultTitle string

	// OrphanHeading titles the section of questions outside every area
	// Default: "Questões"
	OrphanHeading string

	// NoContentNotice is written when the document has no question at all.
	// Empty disables it.
	// Default: "*Nenhuma questão encontrada.*"
	NoContentNotice string
}

// DefaultAssemblerConfig returns sensible default configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		DefaultTitle:    "EXAME NACIONAL DO ENSINO MÉDIO",
		OrphanHeading:   "Questões",
		NoContentNotice: "*Nenhuma questão encontrada.*",
	}
}

// Input is everything the assembler needs about one document
type Input struct {
	Source   string         // File name shown in the citation line
	Lines    []model.Line   // Cleaned global line sequence
	Metadata model.Metadata // Best-effort fields
	Areas    []model.Area   // Nil means segment.FindAreas(Lines)
}

// RenderedQuestion is one formatted question
type RenderedQuestion struct {
	Number   int    `json:"number"`
	Page     int    `json:"page"`
	Markdown string `json:"markdown"`
}

// Section is an area heading with its questions
type Section struct {
	Name      string             `json:"name"`
	RangeHint string             `json:"range_hint,omitempty"`
	Orphan    bool               `json:"orphan,omitempty"`
	Questions []RenderedQuestion `json:"questions"`
}

// Document is the assembled output
type Document struct {
	Title    string         `json:"title"`
	Source   string         `json:"source"`
	Metadata model.Metadata `json:"metadata"`
	Sections []Section      `json:"sections"`
	Markdown string         `json:"-"`
	Lines    []model.Line   `json:"-"` // cleaned lines the document was built from
}

// QuestionCount returns the number of rendered questions
func (d *Document) QuestionCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Questions)
	}
	return n
}

// Assembler combines question fragments into a document
type Assembler struct {
	config AssemblerConfig
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{
		config: DefaultAssemblerConfig(),
	}
}

// NewAssemblerWithConfig creates an assembler with custom configuration
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	return &Assembler{
		config: config,
	}
}

// Assemble builds the document.
//
// Each area is segmented on its own line range, so a question never straddles
// two areas; areas without questions are skipped. Questions found by
// segmenting the whole sequence but claimed by no area are appended as a
// final orphan section.
func (a *Assembler) Assemble(in Input) *Document {
	doc := &Document{
		Title:    in.Metadata.Title,
		Metadata: in.Metadata,
		Lines:    in.Lines,
	}
	if in.Source != "" {
		doc.Source = filepath.Base(in.Source)
	}
	if doc.Title == "" {
		doc.Title = a.config.DefaultTitle
	}

	areas := in.Areas
	if areas == nil {
		areas = segment.FindAreas(in.Lines)
	}

	used := make(map[int]bool)
	for _, area := range areas {
		lines := segment.Slice(in.Lines, area)
		blocks := segment.SplitQuestions(lines)
		if len(blocks) == 0 {
			continue
		}
		sec := Section{
			Name:      area.Name,
			RangeHint: segment.RangeHint(lines),
			Questions: render(blocks),
		}
		for _, q := range blocks {
			used[q.Number] = true
		}
		doc.Sections = append(doc.Sections, sec)
	}

	var orphans []model.QuestionBlock
	for _, q := range segment.SplitQuestions(in.Lines) {
		if !used[q.Number] {
			orphans = append(orphans, q)
		}
	}
	if len(orphans) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Name:      a.config.OrphanHeading,
			Orphan:    true,
			Questions: render(orphans),
		})
	}

	doc.Markdown = a.write(doc)
	return doc
}

func render(blocks []model.QuestionBlock) []RenderedQuestion {
	out := make([]RenderedQuestion, len(blocks))
	for i, q := range blocks {
		out[i] = RenderedQuestion{
			Number:   q.Number,
			Page:     q.FirstPage(),
			Markdown: FormatQuestion(q.Number, q.Lines),
		}
	}
	return out
}

// write produces the Markdown text of an assembled document
func (a *Assembler) write(doc *Document) string {
	parts := []string{"# " + doc.Title, ""}

	if summary := summaryLine(doc.Metadata); summary != "" {
		parts = append(parts, summary, "")
	}
	if doc.Source != "" {
		parts = append(parts, "*Fonte: `"+doc.Source+"`*", "")
	}
	parts = append(parts, "---", "")

	for _, sec := range doc.Sections {
		parts = append(parts, "# "+sec.Name, "")
		if sec.RangeHint != "" {
			parts = append(parts, "*"+sec.RangeHint+"*", "")
		}
		parts = append(parts, "---", "")
		for _, q := range sec.Questions {
			parts = append(parts, q.Markdown)
		}
	}

	if doc.QuestionCount() == 0 && a.config.NoContentNotice != "" {
		parts = append(parts, a.config.NoContentNotice, "")
	}

	return strings.Join(parts, "\n")
}

// summaryLine joins the non-empty metadata fields
func summaryLine(meta model.Metadata) string {
	var items []string
	if meta.Year != "" {
		items = append(items, "**Ano:** "+meta.Year)
	}
	if meta.Day != "" {
		items = append(items, "**"+meta.Day+"**")
	}
	if meta.Booklet != "" {
		items = append(items, "**Caderno "+meta.Booklet+"**")
	}
	return strings.Join(items, " | ")
}
