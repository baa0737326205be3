package main

import (
	"io"
	"slices"

	"github.com/cespare/aoc2021/aoc"
	"github.com/cespare/aoc2021/grid"
)

func init() {
	registerPuzzle("9", parseDigitGrid, day9a, day9b)
}

func parseDigitGrid(r io.Reader) (*grid.Grid[uint8], error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	return grid.ParseDigits(text)
}

func lowPoints(g *grid.Grid[uint8]) []grid.Pt {
	var lows []grid.Pt
	g.Each(func(x, y int, h uint8) {
		p := grid.Pt{X: x, Y: y}
		low := true
		p.ForImmediateNeighbors(func(n grid.Pt) bool {
			if nh, ok := g.At(n); ok && nh <= h {
				low = false
			}
			return low
		})
		if low {
			lows = append(lows, p)
		}
	})
	return lows
}

func day9a(g *grid.Grid[uint8]) int {
	var risk int
	for _, p := range lowPoints(g) {
		h, _ := g.At(p)
		risk += int(h) + 1
	}
	return risk
}

func day9b(g *grid.Grid[uint8]) int {
	seen := grid.New[bool](g.Width(), g.Height())
	var sizes []int
	for _, low := range lowPoints(g) {
		size := 0
		stack := []grid.Pt{low}
		seen.SetAt(low, true)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			p.ForImmediateNeighbors(func(n grid.Pt) bool {
				h, ok := g.At(n)
				if !ok || h == 9 {
					return true
				}
				if s := seen.Ptr(n.X, n.Y); !*s {
					*s = true
					stack = append(stack, n)
				}
				return true
			})
		}
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	product := 1
	for _, s := range sizes[:min(3, len(sizes))] {
		product *= s
	}
	return product
}
