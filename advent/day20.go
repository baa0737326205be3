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
	registerPuzzle("20", parseTrenchMap, day20a, day20b)
}

// A trenchImage is a finite image on an infinite background.
type trenchImage struct {
	pixels     *grid.Grid[bool]
	background bool
}

type trenchMap struct {
	algorithm [512]bool
	image     trenchImage
}

func pixelLit(c rune) (bool, bool) {
	switch c {
	case '#':
		return true, true
	case '.':
		return false, true
	}
	return false, false
}

func parseTrenchMap(r io.Reader) (*trenchMap, error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	alg, img, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, errors.New("missing blank line after enhancement algorithm")
	}
	alg = strings.ReplaceAll(alg, "\n", "")
	if len(alg) != 512 {
		return nil, fmt.Errorf("enhancement algorithm has %d pixels; want 512", len(alg))
	}
	m := new(trenchMap)
	for i, c := range alg {
		lit, ok := pixelLit(c)
		if !ok {
			return nil, fmt.Errorf("bad pixel %q in enhancement algorithm", c)
		}
		m.algorithm[i] = lit
	}
	if m.algorithm[0] && m.algorithm[511] {
		return nil, errors.New("enhancement algorithm lights the whole background forever")
	}
	m.image.pixels, err = grid.Parse(img, pixelLit)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// enhance returns the image grown by one pixel on each side.
func (img trenchImage) enhance(alg *[512]bool) trenchImage {
	w, h := img.pixels.Width()+2, img.pixels.Height()+2
	out := grid.New[bool](w, h)
	for y := range h {
		for x := range w {
			var idx int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					lit, ok := img.pixels.Get(x-1+dx, y-1+dy)
					if !ok {
						lit = img.background
					}
					idx <<= 1
					if lit {
						idx |= 1
					}
				}
			}
			out.Set(x, y, alg[idx])
		}
	}
	bg := alg[0]
	if img.background {
		bg = alg[511]
	}
	return trenchImage{pixels: out, background: bg}
}

// litAfter returns the number of lit pixels after an even number of
// enhancement steps. The background is dark after any even number of steps.
func (m *trenchMap) litAfter(steps int) int {
	img := m.image
	for range steps {
		img = img.enhance(&m.algorithm)
	}
	return img.pixels.Count(func(lit bool) bool { return lit })
}

func day20a(m *trenchMap) int { return m.litAfter(2) }
func day20b(m *trenchMap) int { return m.litAfter(50) }
