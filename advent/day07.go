package main

import (
	"errors"
	"io"
	"slices"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("7", parseCrabs, day7a, day7b)
}

func parseCrabs(r io.Reader) ([]int, error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	crabs, err := aoc.Ints(text, ",")
	if err != nil {
		return nil, err
	}
	if len(crabs) == 0 {
		return nil, errors.New("no crab positions")
	}
	return crabs, nil
}

func fuel(crabs []int, target int, cost func(dist int) int) int {
	var total int
	for _, c := range crabs {
		total += cost(aoc.AbsDiff(c, target))
	}
	return total
}

// day7a aligns on the median, which minimizes the sum of distances.
func day7a(crabs []int) int {
	sorted := slices.Clone(crabs)
	slices.Sort(sorted)
	median := sorted[len(sorted)/2]
	return fuel(crabs, median, func(d int) int { return d })
}

// day7b's optimum is within 1 of the mean, so only the two integers
// around it are tried.
func day7b(crabs []int) int {
	var sum int
	for _, c := range crabs {
		sum += c
	}
	mean := sum / len(crabs)
	if sum < 0 && sum%len(crabs) != 0 {
		mean-- // floor
	}
	return min(
		fuel(crabs, mean, aoc.GaussSum[int]),
		fuel(crabs, mean+1, aoc.GaussSum[int]),
	)
}
