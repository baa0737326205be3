package snailfish

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// A ParseError describes malformed snailfish notation.
type ParseError struct {
	Input    string
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	found := "end of input"
	if e.Offset < len(e.Input) {
		found = fmt.Sprintf("%q", e.Input[e.Offset])
	}
	return fmt.Sprintf("snailfish: at offset %d of %q: expected %s, found %s (near %q)",
		e.Offset, e.Input, e.Expected, found, e.fragment())
}

// fragment returns the input around the error offset.
func (e *ParseError) fragment() string {
	const context = 8
	start := max(e.Offset-context, 0)
	end := min(e.Offset+context, len(e.Input))
	return e.Input[start:end]
}

// Parse parses a single snailfish number in bracket notation. The entire
// string must be consumed.
func Parse(s string) (*Number, error) {
	p := parser{s: s}
	n, err := p.number()
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, p.errorf("end of input")
	}
	return n, nil
}

// MustParse is like Parse but panics if s is malformed.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseList reads one snailfish number per line from r. The numbers are
// returned in input order.
func ParseList(r io.Reader) ([]*Number, error) {
	var nums []*Number
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		n, err := Parse(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nums, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(expected string) *ParseError {
	return &ParseError{Input: p.s, Offset: p.pos, Expected: expected}
}

func (p *parser) number() (*Number, error) {
	if p.pos >= len(p.s) {
		return nil, p.errorf("'[' or digit")
	}
	c := p.s[p.pos]
	switch {
	case c == '[':
		p.pos++
		left, err := p.number()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		right, err := p.number()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return Pair(left, right), nil
	case isDigit(c):
		return p.literal()
	default:
		return nil, p.errorf("'[' or digit")
	}
}

func (p *parser) literal() (*Number, error) {
	start := p.pos
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}
	v, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		// Only overflow gets here.
		p.pos = start
		return nil, p.errorf("a regular number that fits in an int")
	}
	return Literal(v), nil
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return p.errorf(fmt.Sprintf("%q", c))
	}
	p.pos++
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
