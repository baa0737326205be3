package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("17", parseTargetArea, day17a, day17b)
}

// A targetArea is the inclusive rectangle x0..x1, y0..y1. It lies to the
// right of and below the launch point.
type targetArea struct {
	x0, x1, y0, y1 int
}

func parseTargetArea(r io.Reader) (targetArea, error) {
	var t targetArea
	text, err := aoc.ReadString(r)
	if err != nil {
		return t, err
	}
	text = strings.TrimSpace(text)
	if _, err := fmt.Sscanf(text, "target area: x=%d..%d, y=%d..%d", &t.x0, &t.x1, &t.y0, &t.y1); err != nil {
		return t, fmt.Errorf("bad target area %q: %s", text, err)
	}
	if t.x0 > t.x1 {
		t.x0, t.x1 = t.x1, t.x0
	}
	if t.y0 > t.y1 {
		t.y0, t.y1 = t.y1, t.y0
	}
	if t.x0 <= 0 || t.y1 >= 0 {
		return t, fmt.Errorf("target area %q must be right of and below the launch point", text)
	}
	return t, nil
}

// launch reports whether a probe fired with velocity (vx, vy) is ever
// inside t after a step, and the highest y it reaches.
func (t targetArea) launch(vx, vy int) (hit bool, top int) {
	var x, y int
	for x <= t.x1 && y >= t.y0 {
		x += vx
		y += vy
		top = max(top, y)
		if x >= t.x0 && x <= t.x1 && y >= t.y0 && y <= t.y1 {
			return true, top
		}
		vx -= sign(vx)
		vy--
	}
	return false, top
}

// hits calls f with the top height for each initial velocity that lands a
// probe in t. Any faster velocity overshoots in a single step.
func (t targetArea) hits(f func(top int)) {
	for vx := 1; vx <= t.x1; vx++ {
		for vy := t.y0; vy <= -t.y0; vy++ {
			if hit, top := t.launch(vx, vy); hit {
				f(top)
			}
		}
	}
}

func day17a(t targetArea) int {
	var best int
	t.hits(func(top int) { best = max(best, top) })
	return best
}

func day17b(t targetArea) int {
	var n int
	t.hits(func(int) { n++ })
	return n
}
