// Package aoc holds small input and arithmetic helpers shared by the puzzle
// solutions.
package aoc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines reads r to EOF and returns its lines without line terminators.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadString reads all of r.
func ReadString(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Ints parses a list of integers separated by sep, ignoring surrounding
// whitespace. If sep is empty, the integers are separated by runs of
// whitespace.
func Ints(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		fields = strings.Split(s, sep)
	}
	ns := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad integer %q at position %d", f, i)
		}
		ns[i] = n
	}
	return ns, nil
}

// GaussSum returns 1+2+...+n.
func GaussSum[T constraints.Integer](n T) T {
	return n * (n + 1) / 2
}

// AbsDiff returns |a-b|. It is safe for unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
