// Package classify assigns every reconstructed text line exactly one [Kind].
//
// Exam text carries no markup, so structure is recovered from the shape of
// each line: question headers ("QUESTÃO 12"), lettered choices ("A texto"),
// a letter left alone on its line, sub-section markers ("TEXTO I", "QUADRO"),
// bibliographic references and page chrome. The rules live in one ordered
// table inside [Classifier]; the first rule that matches decides the kind,
// and every later pipeline stage switches on that kind instead of matching
// patterns again.
//
// Independently of the kind, a line records what it mentions anywhere in its
// text (a question header, a knowledge-area header, a "Questões de N a M"
// range); these mentions guard merges and drop framing lines.
//
// # Noise
//
// [NoiseFilter] removes running headers, watermark codes, bare years, page
// numbers and booklet colours. Its patterns match whole lines only and can be
// extended from configuration:
//
//	extra, err := classify.CompilePatterns([]string{`prova\s+amarela`})
//	cfg := classify.DefaultNoiseConfig()
//	cfg.Patterns = append(cfg.Patterns, extra...)
//	filter := classify.NewNoiseFilterWithConfig(cfg)
//	lines = filter.Clean(lines)
package classify
