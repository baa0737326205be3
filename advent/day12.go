package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("12", parseCaves, day12a, day12b)
}

type caveSystem struct {
	names []string
	small []bool
	links [][]int
	start int
	end   int
}

func (cs *caveSystem) cave(name string) int {
	for i, n := range cs.names {
		if n == name {
			return i
		}
	}
	cs.names = append(cs.names, name)
	cs.small = append(cs.small, unicode.IsLower(rune(name[0])))
	cs.links = append(cs.links, nil)
	return len(cs.names) - 1
}

func parseCaves(r io.Reader) (*caveSystem, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	cs := &caveSystem{start: -1, end: -1}
	for _, line := range lines {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("bad cave link %q", line)
		}
		i, j := cs.cave(a), cs.cave(b)
		if !cs.small[i] && !cs.small[j] {
			return nil, fmt.Errorf("big caves %s and %s are linked", a, b)
		}
		cs.links[i] = append(cs.links[i], j)
		cs.links[j] = append(cs.links[j], i)
	}
	for i, name := range cs.names {
		switch name {
		case "start":
			cs.start = i
		case "end":
			cs.end = i
		}
	}
	if cs.start < 0 || cs.end < 0 {
		return nil, errors.New("cave system needs a start and an end")
	}
	if len(cs.names) > 64 {
		return nil, fmt.Errorf("too many caves (%d)", len(cs.names))
	}
	return cs, nil
}

// paths counts the paths from cave to end that visit no small cave in
// visited. If spare is set, one small cave other than start may be
// visited a second time.
func (cs *caveSystem) paths(cave int, visited uint64, spare bool) int {
	if cave == cs.end {
		return 1
	}
	if cs.small[cave] {
		visited |= 1 << cave
	}
	var n int
	for _, next := range cs.links[cave] {
		switch {
		case visited&(1<<next) == 0:
			n += cs.paths(next, visited, spare)
		case spare && next != cs.start:
			n += cs.paths(next, visited, false)
		}
	}
	return n
}

func day12a(cs *caveSystem) int { return cs.paths(cs.start, 0, false) }
func day12b(cs *caveSystem) int { return cs.paths(cs.start, 0, true) }
