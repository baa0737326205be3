package main

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("8", parseDisplayNotes, day8a, day8b)
}

// A segments value has bit i set if segment 'a'+i is lit.
type segments uint8

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

func (s segments) contains(t segments) bool { return s&t == t }

type displayNote struct {
	patterns [10]segments
	output   [4]segments
	value    int // decoded output
}

func parseSegments(s string) (segments, error) {
	var seg segments
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("bad segment %q in %q", c, s)
		}
		seg |= 1 << (c - 'a')
	}
	return seg, nil
}

func parseDisplayNotes(r io.Reader) ([]displayNote, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	notes := make([]displayNote, len(lines))
	for i, line := range lines {
		patterns, output, ok := strings.Cut(line, " | ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing separator", i+1)
		}
		pf, of := strings.Fields(patterns), strings.Fields(output)
		if len(pf) != 10 || len(of) != 4 {
			return nil, fmt.Errorf("line %d: got %d patterns and %d outputs; want 10 and 4", i+1, len(pf), len(of))
		}
		for j, f := range pf {
			if notes[i].patterns[j], err = parseSegments(f); err != nil {
				return nil, fmt.Errorf("line %d: %s", i+1, err)
			}
		}
		for j, f := range of {
			if notes[i].output[j], err = parseSegments(f); err != nil {
				return nil, fmt.Errorf("line %d: %s", i+1, err)
			}
		}
		if notes[i].value, err = notes[i].decode(); err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
	}
	return notes, nil
}

func day8a(notes []displayNote) int {
	var n int
	for _, note := range notes {
		for _, s := range note.output {
			switch s.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

func day8b(notes []displayNote) int {
	var sum int
	for _, note := range notes {
		sum += note.value
	}
	return sum
}

// decode deduces the wiring from the ten patterns and returns the output
// value.
func (n *displayNote) decode() (int, error) {
	var digits [10]segments
	for _, p := range n.patterns {
		switch p.count() {
		case 2:
			digits[1] = p
		case 3:
			digits[7] = p
		case 4:
			digits[4] = p
		case 7:
			digits[8] = p
		}
	}
	for _, p := range n.patterns {
		switch p.count() {
		case 6:
			switch {
			case p.contains(digits[4]):
				digits[9] = p
			case p.contains(digits[1]):
				digits[0] = p
			default:
				digits[6] = p
			}
		case 5:
			switch {
			case p.contains(digits[1]):
				digits[3] = p
			case p.contains(digits[4] &^ digits[1]):
				digits[5] = p
			default:
				digits[2] = p
			}
		}
	}
	var v int
	for _, o := range n.output {
		d := -1
		for i, s := range digits {
			if s == o {
				d = i
				break
			}
		}
		if d < 0 {
			return 0, fmt.Errorf("cannot decode output digit %07b", o)
		}
		v = 10*v + d
	}
	return v, nil
}
