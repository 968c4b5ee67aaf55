package segment

import (
	"strings"

	"github.com/tsawler/examdown/classify"
	"github.com/tsawler/examdown/model"
)

// DefaultAreaName names the single area of a document without area headers
const DefaultAreaName = "Questões"

// rangeHintLines is how many leading lines of an area may carry the
// "Questões de N a M" announcement.
const rangeHintLines = 6

// FindAreas locates the knowledge areas of the document. Each line that
// mentions an area header opens an area running up to the next one or to
// the end. Without any header the whole document is one area named
// DefaultAreaName.
func FindAreas(lines []model.Line) []model.Area {
	var starts []int
	for i, l := range lines {
		if classify.IsAreaHeader(l.Text) {
			starts = append(starts, i)
		}
	}

	if len(starts) == 0 {
		return []model.Area{{Name: DefaultAreaName, Start: 0, End: len(lines)}}
	}

	areas := make([]model.Area, len(starts))
	for j, start := range starts {
		end := len(lines)
		if j+1 < len(starts) {
			end = starts[j+1]
		}
		areas[j] = model.Area{
			Name:  strings.TrimSpace(lines[start].Text),
			Start: start,
			End:   end,
		}
	}
	return areas
}

// RangeHint returns the first range announcement among the leading lines of
// an area, or "" when there is none.
func RangeHint(lines []model.Line) string {
	for i, l := range lines {
		if i >= rangeHintLines {
			break
		}
		if classify.IsRangeHint(l.Text) {
			return strings.TrimSpace(l.Text)
		}
	}
	return ""
}

// Slice returns the lines covered by area, clamped to the sequence
func Slice(lines []model.Line, area model.Area) []model.Line {
	start := max(0, min(area.Start, len(lines)))
	end := max(start, min(area.End, len(lines)))
	return lines[start:end]
}
