package snailfish

import "fmt"

// explodeDepth is the nesting level at which a pair explodes.
const explodeDepth = 4

// A Carry holds the halves of an exploded pair that were not absorbed by a
// regular number on that side. A carry that reaches the root is dropped.
type Carry struct {
	Left, Right       int
	HasLeft, HasRight bool
}

// Explode performs a single explode step in place: the leftmost pair nested
// inside four pairs is replaced by 0, its left value is added to the first
// regular number to its left and its right value to the first regular number
// to its right. It reports whether a pair exploded and returns whatever
// values fell off the edges of n.
//
// Explode panics if the pair at that depth is not a pair of regular
// numbers; that cannot happen to a number that was reduced after every
// addition.
func (n *Number) Explode() (Carry, bool) {
	return n.explode(0)
}

func (n *Number) explode(depth int) (Carry, bool) {
	if !n.IsPair() {
		return Carry{}, false
	}
	if depth >= explodeDepth {
		if n.Left.IsPair() || n.Right.IsPair() {
			panic(fmt.Sprintf("snailfish: pair %s nested %d deep is not a pair of regular numbers", n, depth))
		}
		c := Carry{Left: n.Left.Value, Right: n.Right.Value, HasLeft: true, HasRight: true}
		*n = Number{}
		return c, true
	}
	if c, ok := n.Left.explode(depth + 1); ok {
		if c.HasRight {
			n.Right.addLeftmost(c.Right)
			c.Right, c.HasRight = 0, false
		}
		return c, true
	}
	if c, ok := n.Right.explode(depth + 1); ok {
		if c.HasLeft {
			n.Left.addRightmost(c.Left)
			c.Left, c.HasLeft = 0, false
		}
		return c, true
	}
	return Carry{}, false
}

func (n *Number) addLeftmost(v int) {
	for n.IsPair() {
		n = n.Left
	}
	n.Value += v
}

func (n *Number) addRightmost(v int) {
	for n.IsPair() {
		n = n.Right
	}
	n.Value += v
}

// Split performs a single split step in place: the leftmost regular number
// that is 10 or greater is replaced by a pair of its halves, rounding the
// left half down and the right half up. It reports whether a split happened.
func (n *Number) Split() bool {
	if n.IsPair() {
		return n.Left.Split() || n.Right.Split()
	}
	if n.Value < 10 {
		return false
	}
	half := n.Value / 2
	*n = *Pair(Literal(half), Literal(n.Value-half))
	return true
}

// ReduceStep applies one reduction action: an explosion if any pair can
// explode, otherwise a split. It reports whether n changed.
func (n *Number) ReduceStep() bool {
	if _, ok := n.Explode(); ok {
		return true
	}
	return n.Split()
}

// Reduce reduces n in place until no pair is nested inside four pairs and no
// regular number is 10 or greater. Every step rescans from the root, and all
// possible explosions happen before any split.
func (n *Number) Reduce() {
	for n.ReduceStep() {
	}
}

// Add returns the reduced sum of a and b. The result is built from a and b
// themselves, so the caller must not use them afterwards; pass clones to
// keep the operands.
func Add(a, b *Number) *Number {
	sum := Pair(a, b)
	sum.Reduce()
	return sum
}
