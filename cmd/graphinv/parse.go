package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseMatrix reads rows of 0/1 digits; blanks between entries are optional.
// Entry values are checked by adjacency.New, not here.
func parseMatrix(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.Join(strings.Fields(sc.Text()), "")
		if text == "" {
			continue
		}
		row := make([]int, len(text))
		for i, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("line %d: unexpected %q", line, ch)
			}
			row[i] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, errors.New("no matrix rows on input")
	}

	return rows, nil
}
