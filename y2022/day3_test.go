package y2022

import (
	"errors"
	"testing"

	aoc "github.com/maujim/advent-of-code-2022"
)

func TestPriority(t *testing.T) {
	for in, want := range map[byte]int{'a': 1, 'p': 16, 'z': 26, 'A': 27, 'L': 38, 'Z': 52} {
		if got, err := Priority(in); err != nil || got != want {
			t.Errorf("Priority(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []byte{'0', ' ', '{', '@'} {
		if _, err := Priority(in); !errors.Is(err, aoc.ErrUnrecognizedInput) {
			t.Errorf("Priority(%q) = %v; want ErrUnrecognizedInput", in, err)
		}
	}
}

func TestCompartmentScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"vJrwpWtwJgWrhcsFMMfFFhFp", 16},
		// 'L' appears twice in the second half and is scored twice.
		{"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL", 76},
		{"abcd", 0},
		{"aa", 1},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := compartmentScore(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("compartmentScore(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	if _, err := compartmentScore("abc"); !errors.Is(err, aoc.ErrParse) {
		t.Errorf("compartmentScore(odd) = %v; want ErrParse", err)
	}
	if _, err := compartmentScore("a1"); !errors.Is(err, aoc.ErrUnrecognizedInput) {
		t.Errorf("compartmentScore(digit) = %v; want ErrUnrecognizedInput", err)
	}
}

func TestD3(t *testing.T) {
	runSolveTests(t, Solver{}.D3, []solveTest{
		{
			name: "sample",
			in: `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`,
			want: "part1: 237 part2: 70",
		},
		{
			name: "one-group",
			in:   "abcA\nAxyz\nqArr\n",
			want: "part1: 0 part2: 27",
		},
		{
			name:    "no-common-item",
			in:      "ab\ncd\nef\n",
			wantErr: aoc.ErrLogicAssertion,
		},
		{
			name:    "incomplete-group",
			in:      "ab\nba\nab\nab\n",
			wantErr: aoc.ErrParse,
		},
		{
			name:    "odd-length",
			in:      "abc\n",
			wantErr: aoc.ErrParse,
		},
		{
			name:    "bad-item",
			in:      "ab\nc-\nab\n",
			wantErr: aoc.ErrUnrecognizedInput,
		},
	})
}
