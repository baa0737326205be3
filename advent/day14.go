package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("14", parsePolymer, day14a, day14b)
}

type polymer struct {
	template string
	rules    map[[2]byte]byte
}

func parsePolymer(r io.Reader) (*polymer, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 || lines[0] == "" || lines[1] != "" {
		return nil, errors.New("polymer input must be a template, a blank line, and rules")
	}
	p := &polymer{template: lines[0], rules: make(map[[2]byte]byte)}
	for _, line := range lines[2:] {
		pair, insert, ok := strings.Cut(line, " -> ")
		if !ok || len(pair) != 2 || len(insert) != 1 {
			return nil, fmt.Errorf("bad insertion rule %q", line)
		}
		p.rules[[2]byte{pair[0], pair[1]}] = insert[0]
	}
	return p, nil
}

// spread runs the insertion steps on pair counts and returns the
// difference between the most and least common elements.
func (p *polymer) spread(steps int) int {
	pairs := make(map[[2]byte]int)
	for i := 0; i+1 < len(p.template); i++ {
		pairs[[2]byte{p.template[i], p.template[i+1]}]++
	}
	for range steps {
		next := make(map[[2]byte]int, len(pairs))
		for pair, n := range pairs {
			c, ok := p.rules[pair]
			if !ok {
				next[pair] += n
				continue
			}
			next[[2]byte{pair[0], c}] += n
			next[[2]byte{c, pair[1]}] += n
		}
		pairs = next
	}

	// Every element but the last is the first of exactly one pair.
	var counts [256]int
	for pair, n := range pairs {
		counts[pair[0]] += n
	}
	counts[p.template[len(p.template)-1]]++

	most, least := 0, -1
	for _, n := range counts {
		if n == 0 {
			continue
		}
		most = max(most, n)
		if least < 0 || n < least {
			least = n
		}
	}
	return most - least
}

func day14a(p *polymer) int { return p.spread(10) }
func day14b(p *polymer) int { return p.spread(40) }
