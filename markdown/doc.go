// Package markdown renders segmented exam questions as Markdown.
//
// [FormatQuestion] turns the raw lines of one question into a fragment:
//
//	## QUESTÃO 07
//
//	**TEXTO I**
//
//	Enunciado em um único parágrafo.
//
//	> *ASSIS, M. Dom Casmurro. Rio de Janeiro: Garnier, 1899.*
//
//	- **A** primeira alternativa
//	- **B** segunda alternativa
//
// [Assembler] combines the fragments of a whole document under its title,
// metadata summary and knowledge-area headings, and appends the questions no
// area claimed as a final section.
package markdown
