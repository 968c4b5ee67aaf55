package segment

import (
	"sort"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/model"
)

// SplitQuestions partitions lines into question blocks.
//
// A header line opens a new block and is not part of it. Lines before the
// first header are dropped. Blocks are returned in ascending question order
// whatever their order in the input. When a number occurs twice the later
// block replaces the earlier one, even when it is empty.
func SplitQuestions(lines []model.Line) []model.QuestionBlock {
	byNumber := make(map[int]model.QuestionBlock)

	var current *model.QuestionBlock
	closeCurrent := func() {
		if current == nil {
			return
		}
		byNumber[current.Number] = *current
	}

	for _, l := range lines {
		c := classifier.Classify(l.Text)
		if c.Kind == classify.KindHeader {
			closeCurrent()
			current = &model.QuestionBlock{Number: c.Number}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, l)
		}
	}
	closeCurrent()

	blocks := make([]model.QuestionBlock, 0, len(byNumber))
	for _, q := range byNumber {
		blocks = append(blocks, q)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Number < blocks[j].Number
	})
	return blocks
}

// Numbers returns the question numbers of blocks, in order
func Numbers(blocks []model.QuestionBlock) []int {
	out := make([]int, len(blocks))
	for i, q := range blocks {
		out[i] = q.Number
	}
	return out
}
