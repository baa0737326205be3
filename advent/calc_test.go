package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/cespare/aoc2021/snailfish"
)

func TestCalculator(t *testing.T) {
	var c calculator
	for _, tt := range []struct {
		line string
		want string
	}{
		{"[1,2]", "[1,2] (magnitude 7)"},
		{"[[3,4],5]", "[[1,2],[[3,4],5]] (magnitude 143)"},
		{":mag", "143"},
		{":reset", "sum cleared"},
		{"[11,1]", "[[5,6],1] (magnitude 83)"},
		{"[[[[4,3],4],4],[7,[[8,4],9]]]", "[[[5,6],5],[[[0,7],4],[[7,8],[6,0]]]] (magnitude 1161)"},
	} {
		got, err := c.eval(tt.line)
		if err != nil {
			t.Fatalf("eval(%q): %s", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("eval(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}
	dump, err := c.eval(":dump")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dump, "Left:") {
		t.Errorf(":dump: got %q; want a struct dump", dump)
	}
}

func TestCalculatorErrors(t *testing.T) {
	var c calculator
	for _, cmd := range []string{":mag", ":dump"} {
		if _, err := c.eval(cmd); err != errEmptySum {
			t.Errorf("%s on empty sum: got %v; want errEmptySum", cmd, err)
		}
	}
	if _, err := c.eval(":frobnicate"); err == nil {
		t.Error("unknown command: got nil error")
	}
	_, err := c.eval("[1,")
	var perr *snailfish.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("bad number: got %v; want *snailfish.ParseError", err)
	}
	if _, err := c.eval("[[[[[9,8],1],2],3],4]"); err == nil {
		t.Error("number nested 5 deep: got nil error")
	}
	if c.sum != nil {
		t.Errorf("sum after errors: got %s; want none", c.sum)
	}
}
