package snailfish

import (
	"fmt"
	"strings"
	"testing"
)

var homework = []string{
	"[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]",
	"[[[5,[2,8]],4],[5,[[9,9],0]]]",
	"[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]",
	"[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]",
	"[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]",
	"[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]",
	"[[[[5,4],[7,7]],8],[[8,3],8]]",
	"[[9,3],[[9,9],[6,[4,9]]]]",
	"[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]",
	"[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]",
}

func parseAll(t testing.TB, lines []string) []*Number {
	t.Helper()
	nums, err := ParseList(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return nums
}

func TestSum(t *testing.T) {
	for _, tt := range []struct {
		lines []string
		want  string
	}{
		{[]string{"[1,2]"}, "[1,2]"},
		{[]string{"[1,1]", "[2,2]", "[3,3]", "[4,4]"}, "[[[[1,1],[2,2]],[3,3]],[4,4]]"},
		{[]string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]"}, "[[[[3,0],[5,3]],[4,4]],[5,5]]"},
		{[]string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]", "[6,6]"}, "[[[[5,0],[7,4]],[5,5]],[6,6]]"},
		{homework, "[[[[6,6],[7,6]],[[7,7],[7,0]]],[[[7,7],[7,7]],[[7,8],[9,9]]]]"},
	} {
		nums := parseAll(t, tt.lines)
		got := Sum(nums)
		if got.String() != tt.want {
			t.Errorf("Sum(%v): got %s; want %s", tt.lines, got, tt.want)
		}
		checkReduced(t, got)
		for i, n := range nums {
			if n.String() != tt.lines[i] {
				t.Errorf("Sum modified input %d: got %s; want %s", i, n, tt.lines[i])
			}
		}
	}
	if got := Sum(nil); got != nil {
		t.Errorf("Sum(nil): got %s; want nil", got)
	}
}

func TestRunningSum(t *testing.T) {
	sum := MustParse("[[[0,[4,5]],[0,0]],[[[4,5],[2,6]],[9,5]]]")
	for _, tt := range []struct {
		add  string
		want string
	}{
		{"[7,[[[3,7],[4,3]],[[6,3],[8,8]]]]", "[[[[4,0],[5,4]],[[7,7],[6,0]]],[[8,[7,7]],[[7,9],[5,0]]]]"},
		{"[[2,[[0,8],[3,4]]],[[[6,7],1],[7,[1,6]]]]", "[[[[6,7],[6,7]],[[7,7],[0,7]]],[[[8,7],[7,7]],[[8,8],[8,0]]]]"},
		{"[[[[2,4],7],[6,[0,5]]],[[[6,8],[2,8]],[[2,1],[4,5]]]]", "[[[[7,0],[7,7]],[[7,7],[7,8]]],[[[7,7],[8,8]],[[7,7],[8,7]]]]"},
		{"[7,[5,[[3,8],[1,4]]]]", "[[[[7,7],[7,8]],[[9,5],[8,7]]],[[[6,8],[0,8]],[[9,9],[9,0]]]]"},
		{"[[2,[2,2]],[8,[8,1]]]", "[[[[6,6],[6,6]],[[6,0],[6,7]]],[[[7,7],[8,9]],[8,[8,1]]]]"},
		{"[2,9]", "[[[[6,6],[7,7]],[[0,7],[7,7]]],[[[5,5],[5,6]],9]]"},
		{"[1,[[[9,3],9],[[9,0],[0,7]]]]", "[[[[7,8],[6,7]],[[6,8],[0,8]]],[[[7,7],[5,0]],[[5,5],[5,6]]]]"},
		{"[[[5,[7,4]],7],1]", "[[[[7,7],[7,7]],[[8,7],[8,7]]],[[[7,0],[7,7]],9]]"},
		{"[[[[4,2],2],6],[8,7]]", "[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]"},
	} {
		sum = Add(sum, MustParse(tt.add))
		if got := sum.String(); got != tt.want {
			t.Fatalf("after adding %s: got %s; want %s", tt.add, got, tt.want)
		}
	}
	if got, want := sum.Magnitude(), 3488; got != want {
		t.Errorf("final magnitude: got %d; want %d", got, want)
	}
}

func TestHomeworkMagnitude(t *testing.T) {
	nums := parseAll(t, homework)
	if got, want := Sum(nums).Magnitude(), 4140; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestMaxPairMagnitude(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 4, 16} {
		for _, tt := range []struct {
			lines []string
			want  int
		}{
			{nil, 0},
			{[]string{"[1,2]"}, 0},
			{[]string{"[9,9]", "[9,9]"}, 225},
			{[]string{"[1,2]", "[3,4]"}, 3*(3*3+2*4) + 2*(3*1+2*2)},
			{homework, 3993},
		} {
			nums := parseAll(t, tt.lines)
			got := MaxPairMagnitude(nums, workers)
			if got != tt.want {
				t.Errorf("MaxPairMagnitude(%v, %d): got %d; want %d", tt.lines, workers, got, tt.want)
			}
			for i, n := range nums {
				if n.String() != tt.lines[i] {
					t.Errorf("MaxPairMagnitude modified input %d: got %s", i, n)
				}
			}
		}
	}
}

func BenchmarkSum(b *testing.B) {
	nums := parseAll(b, homework)
	for range b.N {
		Sum(nums)
	}
}

func BenchmarkMaxPairMagnitude(b *testing.B) {
	nums := parseAll(b, homework)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for range b.N {
				MaxPairMagnitude(nums, workers)
			}
		})
	}
}
