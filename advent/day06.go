package main

import (
	"fmt"
	"io"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("6", parseFishTimers, day6a, day6b)
}

// fishCounts[t] is the number of lanternfish with timer t.
type fishCounts [9]int

func parseFishTimers(r io.Reader) (fishCounts, error) {
	var counts fishCounts
	text, err := aoc.ReadString(r)
	if err != nil {
		return counts, err
	}
	timers, err := aoc.Ints(text, ",")
	if err != nil {
		return counts, err
	}
	for _, t := range timers {
		if t < 0 || t >= len(counts) {
			return counts, fmt.Errorf("bad lanternfish timer %d", t)
		}
		counts[t]++
	}
	return counts, nil
}

func (c fishCounts) after(days int) int {
	for range days {
		spawning := c[0]
		copy(c[:], c[1:])
		c[6] += spawning
		c[8] = spawning
	}
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

func day6a(c fishCounts) int { return c.after(80) }
func day6b(c fishCounts) int { return c.after(256) }
