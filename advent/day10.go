package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("10", parseChunkLines, day10a, day10b)
}

const (
	openers = "([{<"
	closers = ")]}>"
)

var (
	corruptScores    = [...]int{3, 57, 1197, 25137}
	completionScores = [...]int{1, 2, 3, 4}
)

func parseChunkLines(r io.Reader) ([]string, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		for _, c := range line {
			if !strings.ContainsRune(openers+closers, c) {
				return nil, fmt.Errorf("line %d: unexpected character %q", i+1, c)
			}
		}
	}
	return lines, nil
}

// checkChunks returns the index into closers of the first illegal
// closing bracket, or -1 and the brackets that are still open (as indexes
// into openers, innermost last).
func checkChunks(line string) (illegal int, open []int) {
	for _, c := range line {
		if i := strings.IndexRune(openers, c); i >= 0 {
			open = append(open, i)
			continue
		}
		i := strings.IndexRune(closers, c)
		if len(open) == 0 || open[len(open)-1] != i {
			return i, nil
		}
		open = open[:len(open)-1]
	}
	return -1, open
}

func day10a(lines []string) int {
	var score int
	for _, line := range lines {
		if i, _ := checkChunks(line); i >= 0 {
			score += corruptScores[i]
		}
	}
	return score
}

func day10b(lines []string) int {
	var scores []int
	for _, line := range lines {
		i, open := checkChunks(line)
		if i >= 0 || len(open) == 0 {
			continue
		}
		var score int
		for j := len(open) - 1; j >= 0; j-- {
			score = 5*score + completionScores[open[j]]
		}
		scores = append(scores, score)
	}
	if len(scores) == 0 {
		return 0
	}
	slices.Sort(scores)
	return scores[len(scores)/2]
}
