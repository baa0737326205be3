package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("21", parseDiracStart, day21a, day21b)
}

// diracStart holds the starting spaces (1-10) of the two players.
type diracStart [2]int

func parseDiracStart(r io.Reader) (diracStart, error) {
	var start diracStart
	lines, err := aoc.Lines(r)
	if err != nil {
		return start, err
	}
	if len(lines) != 2 {
		return start, errors.New("need exactly two starting positions")
	}
	for i, line := range lines {
		var player int
		if _, err := fmt.Sscanf(line, "Player %d starting position: %d", &player, &start[i]); err != nil {
			return start, fmt.Errorf("bad starting position %q: %s", line, err)
		}
		if player != i+1 {
			return start, fmt.Errorf("line %d is for player %d", i+1, player)
		}
		if start[i] < 1 || start[i] > 10 {
			return start, fmt.Errorf("starting position %d off the board", start[i])
		}
	}
	return start, nil
}

func move(pos, roll int) int {
	return (pos+roll-1)%10 + 1
}

func day21a(start diracStart) int {
	pos := start
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		rolls++
		die = die%100 + 1
		return die
	}
	for p := 0; ; p ^= 1 {
		pos[p] = move(pos[p], roll()+roll()+roll())
		score[p] += pos[p]
		if score[p] >= 1000 {
			return score[p^1] * rolls
		}
	}
}

// diracRolls[s] is the number of ways three rolls of the 3-sided Dirac
// die add up to s.
var diracRolls = [10]int{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

type diracState struct {
	pos, score [2]int // the player to move is index 0
}

func day21b(start diracStart) int {
	memo := make(map[diracState][2]int)
	var wins func(s diracState) [2]int
	wins = func(s diracState) [2]int {
		if w, ok := memo[s]; ok {
			return w
		}
		var w [2]int
		for sum, ways := range diracRolls {
			if ways == 0 {
				continue
			}
			pos := move(s.pos[0], sum)
			score := s.score[0] + pos
			if score >= 21 {
				w[0] += ways
				continue
			}
			// Swap so that the other player moves next.
			next := wins(diracState{
				pos:   [2]int{s.pos[1], pos},
				score: [2]int{s.score[1], score},
			})
			w[0] += ways * next[1]
			w[1] += ways * next[0]
		}
		memo[s] = w
		return w
	}
	w := wins(diracState{pos: start})
	return max(w[0], w[1])
}
