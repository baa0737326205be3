package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2021/aoc"
)

func init() {
	registerPuzzle("16", parseTransmission, day16a, day16b)
}

type packetOp uint8

const (
	opSum     packetOp = 0
	opProduct packetOp = 1
	opMin     packetOp = 2
	opMax     packetOp = 3
	opLiteral packetOp = 4
	opGreater packetOp = 5
	opLess    packetOp = 6
	opEqual   packetOp = 7
)

type packet struct {
	version uint8
	op      packetOp
	value   int // literal packets only
	sub     []*packet
}

func (p *packet) versionSum() int {
	sum := int(p.version)
	for _, s := range p.sub {
		sum += s.versionSum()
	}
	return sum
}

func (p *packet) eval() int {
	switch p.op {
	case opLiteral:
		return p.value
	case opSum:
		var v int
		for _, s := range p.sub {
			v += s.eval()
		}
		return v
	case opProduct:
		v := 1
		for _, s := range p.sub {
			v *= s.eval()
		}
		return v
	case opMin, opMax:
		v := p.sub[0].eval()
		for _, s := range p.sub[1:] {
			if p.op == opMin {
				v = min(v, s.eval())
			} else {
				v = max(v, s.eval())
			}
		}
		return v
	}
	a, b := p.sub[0].eval(), p.sub[1].eval()
	var ok bool
	switch p.op {
	case opGreater:
		ok = a > b
	case opLess:
		ok = a < b
	case opEqual:
		ok = a == b
	}
	if ok {
		return 1
	}
	return 0
}

var errShortPacket = errors.New("transmission ends mid-packet")

// A bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	b   []byte
	pos int // in bits
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > 8*len(r.b) {
		return 0, errShortPacket
	}
	var v int
	for range n {
		bit := r.b[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v, nil
}

func parseTransmission(r io.Reader) (*packet, error) {
	text, err := aoc.ReadString(r)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if len(text)%2 == 1 {
		text += "0"
	}
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("bad transmission: %s", err)
	}
	br := &bitReader{b: b}
	return br.packet()
}

func (r *bitReader) packet() (*packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	op, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &packet{version: uint8(version), op: packetOp(op)}
	if p.op == opLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			if p.value > (1<<59)-1 {
				return nil, errors.New("literal value overflows")
			}
			p.value = p.value<<4 | group&0xf
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		bits, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + bits
		for r.pos < end {
			s, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.sub = append(p.sub, s)
		}
		if r.pos != end {
			return nil, fmt.Errorf("sub-packets overrun their %d-bit length", bits)
		}
	} else {
		n, err := r.read(11)
		if err != nil {
			return nil, err
		}
		for range n {
			s, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.sub = append(p.sub, s)
		}
	}

	switch p.op {
	case opGreater, opLess, opEqual:
		if len(p.sub) != 2 {
			return nil, fmt.Errorf("comparison packet has %d operands; want 2", len(p.sub))
		}
	default:
		if len(p.sub) == 0 {
			return nil, fmt.Errorf("operator packet (type %d) has no operands", p.op)
		}
	}
	return p, nil
}

func day16a(p *packet) int { return p.versionSum() }
func day16b(p *packet) int { return p.eval() }
