// Package grid provides a dense, fixed-size 2-D grid and a parser for the
// character grids that many puzzle inputs use.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// A Grid is a width×height array of T stored in row-major order.
// The zero Grid is empty.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// New returns a w×h grid filled with the zero value of T.
func New[T any](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", w, h))
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
}

func (g *Grid[T]) Width() int  { return g.w }
func (g *Grid[T]) Height() int { return g.h }

// Len is the number of cells in g.
func (g *Grid[T]) Len() int { return len(g.cells) }

func (g *Grid[T]) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, false
	}
	return x + y*g.w, true
}

// Get returns the value at (x, y). The second result is false, and the
// first is the zero value, if (x, y) is outside g.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	i, ok := g.index(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Ptr returns a pointer to the cell at (x, y), or nil if (x, y) is outside g.
func (g *Grid[T]) Ptr(x, y int) *T {
	i, ok := g.index(x, y)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Set stores v at (x, y). It panics if (x, y) is outside g.
func (g *Grid[T]) Set(x, y int, v T) {
	i, ok := g.index(x, y)
	if !ok {
		panic(fmt.Sprintf("grid: (%d, %d) out of range for %dx%d grid", x, y, g.w, g.h))
	}
	g.cells[i] = v
}

// Clone returns a copy of g. Cell values are copied with ordinary
// assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{w: g.w, h: g.h, cells: cells}
}

// Clear sets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.cells)
}

// Each calls f for every cell in row-major order.
func (g *Grid[T]) Each(f func(x, y int, v T)) {
	for i, v := range g.cells {
		f(i%g.w, i/g.w, v)
	}
}

// Count returns the number of cells for which pred is true.
func (g *Grid[T]) Count(pred func(T) bool) int {
	var n int
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Format renders g one row per line using render for each cell.
// Every row, including the last, ends in a newline.
func (g *Grid[T]) Format(render func(T) rune) string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := range g.h {
		for _, v := range g.cells[y*g.w : (y+1)*g.w] {
			b.WriteRune(render(v))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// A Pt is a position in a grid.
type Pt struct {
	X, Y int
}

func (p Pt) Add(q Pt) Pt { return Pt{p.X + q.X, p.Y + q.Y} }

// ForNeighbors calls f on each of the 8 points around p until f returns
// false.
func (p Pt) ForNeighbors(f func(Pt) (keepGoing bool)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !f(Pt{p.X + dx, p.Y + dy}) {
				return
			}
		}
	}
}

// ForImmediateNeighbors is like ForNeighbors but only visits the 4 points
// that share a row or column with p.
func (p Pt) ForImmediateNeighbors(f func(Pt) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt) bool {
		if n.X == p.X || n.Y == p.Y {
			return f(n)
		}
		return true
	})
}

// Wrap maps p into a w×h grid whose edges wrap around.
func (p Pt) Wrap(w, h int) Pt {
	p.X %= w
	p.Y %= h
	if p.X < 0 {
		p.X += w
	}
	if p.Y < 0 {
		p.Y += h
	}
	return p
}

// At and SetAt are Get and Set for a Pt.
func (g *Grid[T]) At(p Pt) (T, bool) { return g.Get(p.X, p.Y) }
func (g *Grid[T]) SetAt(p Pt, v T)   { g.Set(p.X, p.Y, v) }

// A LineMismatchError is returned by Parse when a line is not as wide as
// the lines before it. Line is the zero-based row index.
type LineMismatchError struct {
	Line int
}

func (e *LineMismatchError) Error() string {
	return fmt.Sprintf("grid: width of line %d does not match previous lines", e.Line)
}

// An UnexpectedCharError is returned by Parse for a character that does
// not convert to a cell value.
type UnexpectedCharError struct {
	X, Y int
	C    rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("grid: unexpected character %q at (%d, %d)", e.C, e.X, e.Y)
}

// ErrNoTrailingNewline is returned by Parse when the last line of its input
// is not terminated.
var ErrNoTrailingNewline = errors.New("grid: missing trailing newline")

// Parse reads a grid with one row per line, converting each character with
// conv. All lines must have the same width and each must end in '\n'.
func Parse[T any](text string, conv func(rune) (T, bool)) (*Grid[T], error) {
	var (
		width  = -1
		height int
		x      int
		cells  []T
	)
	for _, c := range text {
		if c == '\n' {
			if width < 0 {
				width = x
			} else if x != width {
				return nil, &LineMismatchError{Line: height}
			}
			x = 0
			height++
			continue
		}
		v, ok := conv(c)
		if !ok {
			return nil, &UnexpectedCharError{X: x, Y: height, C: c}
		}
		cells = append(cells, v)
		x++
	}
	if x > 0 {
		return nil, ErrNoTrailingNewline
	}
	if width < 0 {
		width = 0
	}
	if len(cells) == 0 {
		// Blank lines only.
		width, height = 0, 0
	}
	return &Grid[T]{w: width, h: height, cells: cells}, nil
}

// ParseDigits parses a grid of decimal digits.
func ParseDigits(text string) (*Grid[uint8], error) {
	return Parse(text, func(c rune) (uint8, bool) {
		if c < '0' || c > '9' {
			return 0, false
		}
		return uint8(c - '0'), true
	})
}
