package main

import (
	"fmt"
	"io"

	"github.com/cespare/aoc2021/aoc"
	"github.com/cespare/aoc2021/grid"
)

func init() {
	registerPuzzle("5", parseVents, day5a, day5b)
}

type ventLine struct {
	a, b grid.Pt
}

func (v ventLine) diagonal() bool {
	return v.a.X != v.b.X && v.a.Y != v.b.Y
}

// points calls f for each point on v, including both ends.
func (v ventLine) points(f func(grid.Pt)) {
	step := grid.Pt{X: sign(v.b.X - v.a.X), Y: sign(v.b.Y - v.a.Y)}
	for p := v.a; ; p = p.Add(step) {
		f(p)
		if p == v.b {
			return
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func parseVents(r io.Reader) ([]ventLine, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	vents := make([]ventLine, len(lines))
	for i, line := range lines {
		var v ventLine
		if _, err := fmt.Sscanf(line, "%d,%d -> %d,%d", &v.a.X, &v.a.Y, &v.b.X, &v.b.Y); err != nil {
			return nil, fmt.Errorf("bad vent line %q: %s", line, err)
		}
		if v.diagonal() && aoc.AbsDiff(v.a.X, v.b.X) != aoc.AbsDiff(v.a.Y, v.b.Y) {
			return nil, fmt.Errorf("vent line %q is not at a multiple of 45 degrees", line)
		}
		vents[i] = v
	}
	return vents, nil
}

func countOverlaps(vents []ventLine, diagonals bool) int {
	seen := make(map[grid.Pt]int)
	for _, v := range vents {
		if v.diagonal() && !diagonals {
			continue
		}
		v.points(func(p grid.Pt) { seen[p]++ })
	}
	var n int
	for _, c := range seen {
		if c > 1 {
			n++
		}
	}
	return n
}

func day5a(vents []ventLine) int { return countOverlaps(vents, false) }
func day5b(vents []ventLine) int { return countOverlaps(vents, true) }
