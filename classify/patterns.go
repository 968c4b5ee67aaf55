package classify

import "regexp"

// Question header written alone on its line, e.g. "QUESTÃO 07"
var headerExact = regexp.MustCompile(`(?i)^QUES[TÃ][ÃA]O\s+(\d{1,3})\s*$`)

// Question header anywhere in a line
var headerSearch = regexp.MustCompile(`(?i)\bQUES[TÃ][ÃA]O\s+(\d{1,3})\b`)

// Prefixes that let a header carry trailing extraction debris
var headerPrefixes = []string{"QUESTÃO", "QUESTAO", "QUESTÃ"}

var subHeader = regexp.MustCompile(`(?i)^(TEXTO\s+[IVX]+|QUADRO|TABELA|FIGURA|GRÁFICO)\s*$`)

var fullChoice = regexp.MustCompile(`^([A-E])\s+(\S.*)$`)

var letterOnly = regexp.MustCompile(`^([A-E])\s*$`)

var areaHeader = regexp.MustCompile(
	`(?i)CI[EÊ]NCIAS\s+(HUMANAS|DA\s+NATUREZA|EXATAS|SOCIAIS)|` +
		`LINGUAGENS|MATEM[AÁ]TICA|REDAÇÃO`,
)

var rangeHint = regexp.MustCompile(`(?i)Questões?\s+de\s+\d+\s+a\s+\d+`)

// Surname in capitals followed by a comma or period: "ASSIS, M. de."
var referenceAuthor = regexp.MustCompile(`^[A-ZÁÀÃÉÊÍÓÕÚ]{2,}[,.]`)

var referenceMarker = regexp.MustCompile(
	`(Disponível em:|Acesso em:|São Paulo:|Rio de Janeiro:|\.?\s*In:\s|Apud:)`,
)

var referenceTail = regexp.MustCompile(`^[a-záàãéêíóõú(]`)

// IsAreaHeader reports whether s mentions a knowledge-area header
func IsAreaHeader(s string) bool {
	return areaHeader.MatchString(s)
}

// IsRangeHint reports whether s announces a question range
func IsRangeHint(s string) bool {
	return rangeHint.MatchString(s)
}
