package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePages reads a page selection such as "1-5,7,9-10"
func parsePages(s string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("empty page selection %q", s)
	}
	return pages, nil
}
