package main

import (
	"errors"
	"io"

	"github.com/cespare/aoc2021/aoc"
	"github.com/cespare/aoc2021/grid"
)

func init() {
	registerPuzzle[*grid.Grid[cucumber], int, int]("25", parseSeaFloor, day25, nil)
}

type cucumber uint8

const (
	noCucumber cucumber = iota
	eastCucumber
	southCucumber
)

func parseCucumber(c rune) (cucumber, bool) {
	switch c {
	case '.':
		return noCucumber, true
	case '>':
		return eastCucumber, true
	case 'v':
		return southCucumber, true
	}
	return 0, false
}

func parseSeaFloor(r io.Reader) (*grid.Grid[cucumber], error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(text, parseCucumber)
	if err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, errors.New("empty sea floor")
	}
	return g, nil
}

// herdMove moves every cucumber of kind c one space in dir at once,
// wrapping around the edges. It reports whether any moved.
func herdMove(g *grid.Grid[cucumber], c cucumber, dir grid.Pt) (*grid.Grid[cucumber], bool) {
	next := g.Clone()
	moved := false
	g.Each(func(x, y int, v cucumber) {
		if v != c {
			return
		}
		to := grid.Pt{X: x, Y: y}.Add(dir).Wrap(g.Width(), g.Height())
		if dst, _ := g.At(to); dst == noCucumber {
			next.SetAt(to, c)
			next.Set(x, y, noCucumber)
			moved = true
		}
	})
	return next, moved
}

// day25 returns the first step on which no sea cucumber moves.
func day25(g *grid.Grid[cucumber]) int {
	for step := 1; ; step++ {
		var east, south bool
		g, east = herdMove(g, eastCucumber, grid.Pt{X: 1})
		g, south = herdMove(g, southCucumber, grid.Pt{Y: 1})
		if !east && !south {
			return step
		}
	}
}
