// Package snailfish implements snailfish number arithmetic (Advent of Code
// 2021, day 18).
//
// A snailfish number is a binary tree whose leaves are regular numbers. Adding
// two numbers pairs them and then reduces the result by repeatedly exploding
// deeply nested pairs and splitting large regular numbers.
package snailfish

import (
	"strconv"
	"strings"
)

// A Number is either a regular number (Left and Right are nil) or a pair.
// A Number exclusively owns its children.
type Number struct {
	Value       int
	Left, Right *Number
}

// Literal returns a regular number.
func Literal(v int) *Number {
	return &Number{Value: v}
}

// Pair returns a pair of left and right. The new number takes ownership
// of both.
func Pair(left, right *Number) *Number {
	return &Number{Left: left, Right: right}
}

// IsPair reports whether n is a pair.
func (n *Number) IsPair() bool {
	return n.Left != nil
}

// Clone returns a deep copy of n.
func (n *Number) Clone() *Number {
	if !n.IsPair() {
		return Literal(n.Value)
	}
	return Pair(n.Left.Clone(), n.Right.Clone())
}

// Equal reports whether n and m have the same shape and values.
func (n *Number) Equal(m *Number) bool {
	if n.IsPair() != m.IsPair() {
		return false
	}
	if !n.IsPair() {
		return n.Value == m.Value
	}
	return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
}

// Depth is the number of levels of pairs in n; a regular number has
// depth 0. Reduce handles numbers of depth 5 or less, so two numbers can be
// added if neither is deeper than 4.
func (n *Number) Depth() int {
	if !n.IsPair() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Magnitude is 3 times the magnitude of the left element plus 2 times the
// magnitude of the right element; a regular number's magnitude is its value.
func (n *Number) Magnitude() int {
	if !n.IsPair() {
		return n.Value
	}
	return 3*n.Left.Magnitude() + 2*n.Right.Magnitude()
}

// String formats n in bracket notation, such as [[1,2],3].
func (n *Number) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Number) format(b *strings.Builder) {
	if !n.IsPair() {
		b.WriteString(strconv.Itoa(n.Value))
		return
	}
	b.WriteByte('[')
	n.Left.format(b)
	b.WriteByte(',')
	n.Right.format(b)
	b.WriteByte(']')
}
