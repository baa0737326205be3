package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("4", parseBingo, day4a, day4b)
}

type bingoGame struct {
	draws  []int
	boards []bingoBoard
}

// A bingoBoard is a 5×5 board in row-major order. Bit i of marked is set
// once cells[i] has been drawn.
type bingoBoard struct {
	cells  [25]int
	marked uint32
}

var bingoWins = func() []uint32 {
	var wins []uint32
	for i := range 5 {
		row := uint32(0b11111) << (5 * i)
		col := uint32(0b00001_00001_00001_00001_00001) << i
		wins = append(wins, row, col)
	}
	return wins
}()

func (b *bingoBoard) mark(n int) {
	for i, c := range b.cells {
		if c == n {
			b.marked |= 1 << i
		}
	}
}

func (b *bingoBoard) won() bool {
	for _, w := range bingoWins {
		if b.marked&w == w {
			return true
		}
	}
	return false
}

func (b *bingoBoard) unmarkedSum() int {
	var sum int
	for i, c := range b.cells {
		if b.marked&(1<<i) == 0 {
			sum += c
		}
	}
	return sum
}

func parseBingo(r io.Reader) (*bingoGame, error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	sections := strings.Split(strings.TrimSpace(text), "\n\n")
	draws, err := aoc.Ints(sections[0], ",")
	if err != nil {
		return nil, fmt.Errorf("bad draw list: %s", err)
	}
	g := &bingoGame{draws: draws}
	for i, section := range sections[1:] {
		cells, err := aoc.Ints(section, "")
		if err != nil {
			return nil, fmt.Errorf("board %d: %s", i+1, err)
		}
		if len(cells) != 25 {
			return nil, fmt.Errorf("board %d has %d numbers; want 25", i+1, len(cells))
		}
		var b bingoBoard
		copy(b.cells[:], cells)
		g.boards = append(g.boards, b)
	}
	if len(g.boards) == 0 {
		return nil, errors.New("no bingo boards")
	}
	return g, nil
}

// play calls the draws in order on a copy of the boards and returns the
// winning scores in the order the boards win.
func (g *bingoGame) play() []int {
	boards := append([]bingoBoard(nil), g.boards...)
	done := make([]bool, len(boards))
	var scores []int
	for _, n := range g.draws {
		for i := range boards {
			if done[i] {
				continue
			}
			boards[i].mark(n)
			if boards[i].won() {
				done[i] = true
				scores = append(scores, n*boards[i].unmarkedSum())
			}
		}
	}
	return scores
}

func day4a(g *bingoGame) int {
	scores := g.play()
	if len(scores) == 0 {
		return 0
	}
	return scores[0]
}

func day4b(g *bingoGame) int {
	scores := g.play()
	if len(scores) == 0 {
		return 0
	}
	return scores[len(scores)-1]
}
