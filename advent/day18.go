package main

import (
	"errors"
	"io"

	"github.com/cespare/aoc2021/snailfish"
)

func init() {
	registerPuzzle("18", parseHomework, day18a, day18b)
}

func parseHomework(r io.Reader) ([]*snailfish.Number, error) {
	nums, err := snailfish.ParseList(r)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, errors.New("homework needs at least two snailfish numbers")
	}
	return nums, nil
}

func day18a(nums []*snailfish.Number) int {
	return snailfish.Sum(nums).Magnitude()
}

func day18b(nums []*snailfish.Number) int {
	return snailfish.MaxPairMagnitude(nums, workers)
}
