package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/cespare/aoc2021/grid"
	"github.com/cespare/aoc2021/snailfish"
)

func TestCavePaths(t *testing.T) {
	for _, tt := range []struct {
		links        string
		part1, part2 int
	}{
		{"start-A\nstart-b\nA-c\nA-b\nb-d\nA-end\nb-end\n", 10, 36},
		{"dc-end\nHN-start\nstart-kj\ndc-start\ndc-HN\nLN-dc\nHN-end\nkj-sa\nkj-HN\nkj-dc\n", 19, 103},
	} {
		cs, err := parseCaves(strings.NewReader(tt.links))
		if err != nil {
			t.Fatal(err)
		}
		if got := day12a(cs); got != tt.part1 {
			t.Errorf("part 1: got %d; want %d", got, tt.part1)
		}
		if got := day12b(cs); got != tt.part2 {
			t.Errorf("part 2: got %d; want %d", got, tt.part2)
		}
	}
	if _, err := parseCaves(strings.NewReader("start-A\nA-B\nB-end\n")); err == nil {
		t.Error("linked big caves: got nil error")
	}
	if _, err := parseCaves(strings.NewReader("start-a\n")); err == nil {
		t.Error("missing end: got nil error")
	}
}

func TestPackets(t *testing.T) {
	for _, tt := range []struct {
		hex        string
		versionSum int
		value      int
	}{
		{"D2FE28", 6, 2021},
		{"38006F45291200", 9, 1},
		{"EE00D40C823060", 14, 3},
		{"8A004A801A8002F478", 16, 15},
		{"620080001611562C8802118E34", 12, 46},
		{"C0015000016115A2E0802F182340", 23, 46},
		{"A0016C880162017C3686B18A3D4780", 31, 54},
		{"C200B40A82", 14, 3},
		{"04005AC33890", 8, 54},
		{"880086C3E88112", 15, 7},
		{"CE00C43D881120", 11, 9},
		{"D8005AC2A8F0", 13, 1},
		{"F600BC2D8F", 19, 0},
		{"9C005AC2F8F0", 16, 0},
		{"9C0141080250320F1802104A08", 20, 1},
	} {
		p, err := parseTransmission(strings.NewReader(tt.hex + "\n"))
		if err != nil {
			t.Errorf("%s: %s", tt.hex, err)
			continue
		}
		if got := p.versionSum(); got != tt.versionSum {
			t.Errorf("%s: version sum: got %d; want %d", tt.hex, got, tt.versionSum)
		}
		if got := p.eval(); got != tt.value {
			t.Errorf("%s: value: got %d; want %d", tt.hex, got, tt.value)
		}
	}
}

func TestPacketStructure(t *testing.T) {
	p, err := parseTransmission(strings.NewReader("EE00D40C823060"))
	if err != nil {
		t.Fatal(err)
	}
	if p.version != 7 || p.op != opMax || len(p.sub) != 3 {
		t.Fatalf("got version %d op %d with %d sub-packets; want version 7 op %d with 3",
			p.version, p.op, len(p.sub), opMax)
	}
	for i, want := range []int{1, 2, 3} {
		if s := p.sub[i]; s.op != opLiteral || s.value != want {
			t.Errorf("sub-packet %d: got op %d value %d; want literal %d", i, s.op, s.value, want)
		}
	}
}

func TestPacketErrors(t *testing.T) {
	for _, hex := range []string{
		"",
		"D2FE",         // literal cut short
		"38006F452912", // sub-packets cut short
		"XYZ",
	} {
		if _, err := parseTransmission(strings.NewReader(hex)); err == nil {
			t.Errorf("%q: got nil error", hex)
		}
	}
	_, err := parseTransmission(strings.NewReader("D2FE"))
	if !errors.Is(err, errShortPacket) {
		t.Errorf("got %v; want errShortPacket", err)
	}
}

func TestTargetArea(t *testing.T) {
	ta, err := parseTargetArea(strings.NewReader("target area: x=20..30, y=-10..-5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (targetArea{20, 30, -10, -5}); ta != want {
		t.Fatalf("got %+v; want %+v", ta, want)
	}
	for _, tt := range []struct {
		vx, vy int
		hit    bool
	}{
		{7, 2, true},
		{6, 3, true},
		{9, 0, true},
		{6, 9, true},
		{17, -4, false},
	} {
		if hit, _ := ta.launch(tt.vx, tt.vy); hit != tt.hit {
			t.Errorf("launch(%d, %d): got hit=%t; want %t", tt.vx, tt.vy, hit, tt.hit)
		}
	}
	if _, top := ta.launch(6, 9); top != 45 {
		t.Errorf("launch(6, 9) top: got %d; want 45", top)
	}
}

func TestHomeworkNeedsTwoNumbers(t *testing.T) {
	if _, err := parseHomework(strings.NewReader("[1,2]\n")); err == nil {
		t.Error("got nil error for a single number")
	}
	_, err := parseHomework(strings.NewReader("[1,2]\n[3,4\n"))
	var perr *snailfish.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("got %v; want *snailfish.ParseError", err)
	}
}

func TestHomeworkWorkers(t *testing.T) {
	nums, err := parseHomework(strings.NewReader(`[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
`))
	if err != nil {
		t.Fatal(err)
	}
	defer func(n int) { workers = n }(workers)
	for _, n := range []int{1, 3, 8} {
		workers = n
		if got := day18b(nums); got != 3993 {
			t.Errorf("workers=%d: got %d; want 3993", n, got)
		}
	}
}

func TestBingoErrors(t *testing.T) {
	for _, in := range []string{
		"1,2,3\n",
		"1,2,3\n\n1 2 3\n",
		"1,x\n\n" + strings.Repeat("1 ", 25) + "\n",
	} {
		if _, err := parseBingo(strings.NewReader(in)); err == nil {
			t.Errorf("parseBingo(%q): got nil error", in)
		}
	}
}

func TestTiledRisk(t *testing.T) {
	g, err := grid.ParseDigits("8\n")
	if err != nil {
		t.Fatal(err)
	}
	// The 5×5 expansion of a single 8 from the puzzle description.
	want := []string{"89123", "91234", "12345", "23456", "34567"}
	for y, row := range want {
		for x, c := range row {
			got, ok := tiledRisk(g, 5, grid.Pt{X: x, Y: y})
			if !ok || got != int(c-'0') {
				t.Errorf("tiledRisk(%d, %d): got (%d, %t); want %c", x, y, got, ok, c)
			}
		}
	}
	if _, ok := tiledRisk(g, 5, grid.Pt{X: 5, Y: 0}); ok {
		t.Error("tiledRisk past the tiled map: got ok")
	}
}

func TestSeaFloorStep(t *testing.T) {
	g, err := parseSeaFloor(strings.NewReader("...>>>>>...\n"))
	if err != nil {
		t.Fatal(err)
	}
	g, _ = herdMove(g, eastCucumber, grid.Pt{X: 1})
	got := g.Format(func(c cucumber) rune { return rune(".>v"[c]) })
	if want := "...>>>>.>..\n"; got != want {
		t.Errorf("after one step: got %q; want %q", got, want)
	}
}

func TestDiracDeterministic(t *testing.T) {
	start, err := parseDiracStart(strings.NewReader("Player 1 starting position: 4\nPlayer 2 starting position: 8\n"))
	if err != nil {
		t.Fatal(err)
	}
	if start != (diracStart{4, 8}) {
		t.Fatalf("got %v; want [4 8]", start)
	}
	if got := day21a(start); got != 739785 {
		t.Errorf("got %d; want 739785", got)
	}
}
