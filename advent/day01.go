package main

import (
	"io"
	"strconv"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("1", parseDepths, day1a, day1b)
}

func parseDepths(r io.Reader) ([]int, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	depths := make([]int, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, err
		}
		depths[i] = n
	}
	return depths, nil
}

func day1a(depths []int) int {
	return countIncreases(depths, 1)
}

// day1b compares sums of 3-wide windows. Adjacent windows share two
// terms, so only the entering and leaving depths need comparing.
func day1b(depths []int) int {
	return countIncreases(depths, 3)
}

func countIncreases(depths []int, gap int) int {
	var n int
	for i := gap; i < len(depths); i++ {
		if depths[i] > depths[i-gap] {
			n++
		}
	}
	return n
}
