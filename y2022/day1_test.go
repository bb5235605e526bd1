package y2022

import (
	"testing"

	aoc "github.com/maujim/advent-of-code-2022"
)

func TestD1(t *testing.T) {
	runSolveTests(t, Solver{}.D1, []solveTest{
		{
			name: "trailing-blank",
			in:   "3\n4\n\n5\n\n8\n9\n\n",
			want: "part1: 17 part2: 29",
		},
		{
			// The last group is counted even without a blank line after it.
			name: "no-trailing-blank",
			in:   "3\n4\n\n5\n\n8\n9\n",
			want: "part1: 17 part2: 29",
		},
		{
			name: "one-group",
			in:   "10\n20\n",
			want: "part1: 30 part2: 30",
		},
		{
			name: "two-groups",
			in:   "1\n\n2\n",
			want: "part1: 2 part2: 3",
		},
		{
			name: "empty",
			in:   "",
			want: "part1: 0 part2: 0",
		},
		{
			name: "more-than-three",
			in:   "1\n\n9\n\n2\n\n8\n\n3\n",
			want: "part1: 9 part2: 20",
		},
		{
			name:    "not-a-number",
			in:      "1\nmany\n",
			wantErr: aoc.ErrParse,
		},
	})
}
