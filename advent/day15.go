package main

import (
	"container/heap"
	"errors"
	"io"

	"github.com/cespare/aoc2021/grid"
)

func init() {
	registerPuzzle("15", parseRiskMap, day15a, day15b)
}

func parseRiskMap(r io.Reader) (*grid.Grid[uint8], error) {
	g, err := parseDigitGrid(r)
	if err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, errors.New("empty risk map")
	}
	return g, nil
}

// tiledRisk returns the risk at p on the map made by repeating g tiles
// times in each direction, each tile's risks 1 higher than the tile to its
// left or above, wrapping from 9 back to 1.
func tiledRisk(g *grid.Grid[uint8], tiles int, p grid.Pt) (int, bool) {
	w, h := g.Width(), g.Height()
	if p.X < 0 || p.Y < 0 || p.X >= w*tiles || p.Y >= h*tiles {
		return 0, false
	}
	base, _ := g.Get(p.X%w, p.Y%h)
	return (int(base)+p.X/w+p.Y/h-1)%9 + 1, true
}

type riskItem struct {
	p    grid.Pt
	risk int
}

type riskQueue []riskItem

func (q riskQueue) Len() int           { return len(q) }
func (q riskQueue) Less(i, j int) bool { return q[i].risk < q[j].risk }
func (q riskQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *riskQueue) Push(x any)        { *q = append(*q, x.(riskItem)) }
func (q *riskQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}

// lowestRisk finds the lowest total risk of a path from the top left to the
// bottom right of the tiled map. The risk of the starting position is not
// counted.
func lowestRisk(g *grid.Grid[uint8], tiles int) int {
	dest := grid.Pt{X: g.Width()*tiles - 1, Y: g.Height()*tiles - 1}
	best := grid.New[int](g.Width()*tiles, g.Height()*tiles)
	done := grid.New[bool](best.Width(), best.Height())
	q := &riskQueue{{p: grid.Pt{}, risk: 0}}
	for q.Len() > 0 {
		item := heap.Pop(q).(riskItem)
		if item.p == dest {
			return item.risk
		}
		d := done.Ptr(item.p.X, item.p.Y)
		if *d {
			continue
		}
		*d = true
		item.p.ForImmediateNeighbors(func(n grid.Pt) bool {
			r, ok := tiledRisk(g, tiles, n)
			if !ok {
				return true
			}
			total := item.risk + r
			if b := best.Ptr(n.X, n.Y); *b == 0 || total < *b {
				*b = total
				heap.Push(q, riskItem{n, total})
			}
			return true
		})
	}
	panic("destination unreachable")
}

func day15a(g *grid.Grid[uint8]) int { return lowestRisk(g, 1) }
func day15b(g *grid.Grid[uint8]) int { return lowestRisk(g, 5) }
