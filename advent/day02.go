package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("2", parseSubCommands, day2a, day2b)
}

type subCommand struct {
	dir string // forward, down, or up
	n   int
}

func parseSubCommands(r io.Reader) ([]subCommand, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	cmds := make([]subCommand, len(lines))
	for i, line := range lines {
		dir, amount, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("bad command %q", line)
		}
		switch dir {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("bad command %q", line)
		}
		n, err := strconv.Atoi(amount)
		if err != nil {
			return nil, fmt.Errorf("bad command %q: %s", line, err)
		}
		cmds[i] = subCommand{dir, n}
	}
	return cmds, nil
}

func day2a(cmds []subCommand) int {
	var x, depth int
	for _, cmd := range cmds {
		switch cmd.dir {
		case "forward":
			x += cmd.n
		case "down":
			depth += cmd.n
		case "up":
			depth -= cmd.n
		}
	}
	return x * depth
}

func day2b(cmds []subCommand) int {
	var x, depth, aim int
	for _, cmd := range cmds {
		switch cmd.dir {
		case "forward":
			x += cmd.n
			depth += aim * cmd.n
		case "down":
			aim += cmd.n
		case "up":
			aim -= cmd.n
		}
	}
	return x * depth
}
