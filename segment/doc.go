// Package segment partitions the cleaned line stream of an exam into
// questions and knowledge areas, repairs lettered choices that extraction
// split across physical lines, and reads the document metadata.
//
// Segmentation never looks at geometry: it works on [model.Line] values in
// reading order, as produced by the layout package and cleaned by the
// classify noise filter.
//
//	areas := segment.FindAreas(lines)
//	for _, a := range areas {
//		for _, q := range segment.SplitQuestions(lines[a.Start:a.End]) {
//			fixed := segment.NormalizeChoices(q.Lines)
//			...
//		}
//	}
package segment

import "github.com/tsawler/examdown/classify"

// classifier is shared by every function of the package; it holds no state
// besides compiled patterns.
var classifier = classify.NewClassifier()
