package main

import "github.com/cespare/aoc2021/grid"

func init() {
	registerPuzzle("11", parseDigitGrid, day11a, day11b)
}

// octopusStep advances the energy levels in g by one step and returns the
// number of flashes. An octopus that flashed is left at 0.
func octopusStep(g *grid.Grid[uint8]) int {
	var (
		n       int
		flashed []grid.Pt
	)
	inc := func(p grid.Pt) {
		e := g.Ptr(p.X, p.Y)
		*e++
		if *e > 9 {
			*e = 0
			n++
			flashed = append(flashed, p)
		}
	}
	g.Each(func(x, y int, _ uint8) { inc(grid.Pt{X: x, Y: y}) })
	for len(flashed) > 0 {
		p := flashed[len(flashed)-1]
		flashed = flashed[:len(flashed)-1]
		p.ForNeighbors(func(q grid.Pt) bool {
			// Zero means the octopus already flashed this step.
			if e, ok := g.At(q); ok && e > 0 {
				inc(q)
			}
			return true
		})
	}
	return n
}

func day11a(g *grid.Grid[uint8]) int {
	g = g.Clone()
	var flashes int
	for range 100 {
		flashes += octopusStep(g)
	}
	return flashes
}

func day11b(g *grid.Grid[uint8]) int {
	g = g.Clone()
	for step := 1; ; step++ {
		if octopusStep(g) == g.Len() {
			return step
		}
	}
}
