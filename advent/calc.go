package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/cespare/aoc2021/snailfish"
)

func init() {
	registerInteractive("18calc", day18calc)
}

// day18calc is an interactive snailfish calculator. Each number entered is
// added to a running sum.
func day18calc(e *env) error {
	historyFile := ""
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "advent-18calc-history")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "snailfish> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	var c calculator
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out, err := c.eval(line)
		if err != nil {
			log.Println(err)
			continue
		}
		fmt.Fprintln(e.out, out)
	}
}

// A calculator holds the running sum of a calculator session.
// The zero value is ready to use.
type calculator struct {
	sum *snailfish.Number
}

var errEmptySum = errors.New("no numbers entered")

// eval runs one line of input: a command or a number to add.
func (c *calculator) eval(line string) (string, error) {
	switch line {
	case ":reset":
		c.sum = nil
		return "sum cleared", nil
	case ":dump":
		if c.sum == nil {
			return "", errEmptySum
		}
		return pretty.Sprint(c.sum), nil
	case ":mag":
		if c.sum == nil {
			return "", errEmptySum
		}
		return fmt.Sprint(c.sum.Magnitude()), nil
	}
	if strings.HasPrefix(line, ":") {
		return "", fmt.Errorf("unknown command %q (have :reset, :dump, :mag)", line)
	}
	n, err := snailfish.Parse(line)
	if err != nil {
		return "", err
	}
	if d := n.Depth(); d > 4 {
		return "", fmt.Errorf("%s is nested %d pairs deep; at most 4 can be added", n, d)
	}
	if c.sum == nil {
		n.Reduce()
		c.sum = n
	} else {
		c.sum = snailfish.Add(c.sum, n)
	}
	return fmt.Sprintf("%s (magnitude %d)", c.sum, c.sum.Magnitude()), nil
}
