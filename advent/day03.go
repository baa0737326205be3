package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("3", parseDiagnostic, day3a, day3b)
}

type diagnostic struct {
	width  int
	values []uint
}

func parseDiagnostic(r io.Reader) (*diagnostic, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("empty diagnostic report")
	}
	d := &diagnostic{width: len(lines[0])}
	if d.width == 0 || d.width > 63 {
		return nil, fmt.Errorf("bad report width %d", d.width)
	}
	for i, line := range lines {
		if len(line) != d.width {
			return nil, fmt.Errorf("line %d has width %d; want %d", i+1, len(line), d.width)
		}
		v, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		d.values = append(d.values, uint(v))
	}
	return d, nil
}

// countOnes returns how many values have bit i set.
func countOnes(values []uint, i int) int {
	var n int
	for _, v := range values {
		n += int(v >> i & 1)
	}
	return n
}

func day3a(d *diagnostic) int {
	var gamma uint
	for i := d.width - 1; i >= 0; i-- {
		gamma <<= 1
		if 2*countOnes(d.values, i) > len(d.values) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<d.width - 1)
	return int(gamma * epsilon)
}

func day3b(d *diagnostic) int {
	oxygen := d.rating(func(ones, zeros int) uint {
		if ones >= zeros {
			return 1
		}
		return 0
	})
	co2 := d.rating(func(ones, zeros int) uint {
		if ones < zeros {
			return 1
		}
		return 0
	})
	return int(oxygen * co2)
}

// rating filters the values bit by bit from the most significant,
// keeping those whose bit matches keep, until one value remains.
func (d *diagnostic) rating(keep func(ones, zeros int) uint) uint {
	values := append([]uint(nil), d.values...)
	for i := d.width - 1; i >= 0 && len(values) > 1; i-- {
		ones := countOnes(values, i)
		if ones == 0 || ones == len(values) {
			continue
		}
		bit := keep(ones, len(values)-ones)
		kept := values[:0]
		for _, v := range values {
			if v>>i&1 == bit {
				kept = append(kept, v)
			}
		}
		values = kept
	}
	return values[0]
}
