package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2021/aoc"
	"github.com/cespare/aoc2021/grid"
)

func init() {
	registerPuzzle("13", parseOrigami, day13a, day13b)
}

type fold struct {
	alongX bool
	at     int
}

type origami struct {
	dots  []grid.Pt
	folds []fold
}

func parseOrigami(r io.Reader) (*origami, error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	dots, folds, ok := strings.Cut(strings.TrimSpace(text), "\n\n")
	if !ok {
		return nil, errors.New("missing fold instructions")
	}
	o := new(origami)
	for _, line := range strings.Split(dots, "\n") {
		var p grid.Pt
		if _, err := fmt.Sscanf(line, "%d,%d", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("bad dot %q: %s", line, err)
		}
		o.dots = append(o.dots, p)
	}
	for _, line := range strings.Split(folds, "\n") {
		var axis rune
		var f fold
		if _, err := fmt.Sscanf(line, "fold along %c=%d", &axis, &f.at); err != nil {
			return nil, fmt.Errorf("bad fold %q: %s", line, err)
		}
		switch axis {
		case 'x':
			f.alongX = true
		case 'y':
		default:
			return nil, fmt.Errorf("bad fold axis in %q", line)
		}
		o.folds = append(o.folds, f)
	}
	return o, nil
}

// apply folds the dots and returns the distinct dots that remain.
func (f fold) apply(dots []grid.Pt) []grid.Pt {
	seen := make(map[grid.Pt]bool)
	var folded []grid.Pt
	for _, p := range dots {
		if f.alongX && p.X > f.at {
			p.X = 2*f.at - p.X
		} else if !f.alongX && p.Y > f.at {
			p.Y = 2*f.at - p.Y
		}
		if !seen[p] {
			seen[p] = true
			folded = append(folded, p)
		}
	}
	return folded
}

func day13a(o *origami) int {
	return len(o.folds[0].apply(o.dots))
}

// day13b renders the dots left after every fold, '#' for a dot and '.'
// elsewhere, one row per line.
func day13b(o *origami) string {
	dots := o.dots
	for _, f := range o.folds {
		dots = f.apply(dots)
	}
	var w, h int
	for _, p := range dots {
		w = max(w, p.X+1)
		h = max(h, p.Y+1)
	}
	paper := grid.New[bool](w, h)
	for _, p := range dots {
		paper.SetAt(p, true)
	}
	render := func(dot bool) rune {
		if dot {
			return '#'
		}
		return '.'
	}
	return strings.TrimSuffix(paper.Format(render), "\n")
}
