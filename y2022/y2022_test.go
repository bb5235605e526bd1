package y2022

import (
	"bytes"
	"errors"
	"io"
	"testing"

	aoc "github.com/maujim/advent-of-code-2022"
)

func TestSamples(t *testing.T) {
	r, err := aoc.NewRunner(Source, &Solver{})
	if err != nil {
		t.Fatal(err)
	}
	r.Stderr = io.Discard
	days := r.Days()
	if len(days) != 4 {
		t.Errorf("registered days = %v; want 1 through 4", days)
	}
	for _, n := range days {
		if !r.Sample(n) {
			t.Errorf("day %d has no sample", n)
			continue
		}
		if err := r.CheckSample(n); err != nil {
			t.Error(err)
		}
	}
}

type solveTest struct {
	name    string
	in      string
	want    string
	wantErr error
}

func runSolveTests(t *testing.T, solve aoc.SolveFunc, tests []solveTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solve(aoc.LinesOf(tt.in))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, %v; want error %v", got, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Solving twice over the same input, with a rewind in between, gives the
// same answer.
func TestRewindIdempotent(t *testing.T) {
	var s Solver
	inputs := map[string]struct {
		solve aoc.SolveFunc
		in    string
	}{
		"day1": {s.D1, "3\n4\n\n5\n\n8\n9\n"},
		"day2": {s.D2, "A Y\nB X\nC Z\n"},
		"day3": {s.D3, "vJrwpWtwJgWrhcsFMMfFFhFp\njqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL\nPmmdzqPrVvPwwTWBwg\n"},
		"day4": {s.D4, "2_4,6_8\n2_8,3_7\n"},
	}
	for name, tt := range inputs {
		in := aoc.LinesOf(tt.in)
		first, err := tt.solve(in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := in.Rewind(); err != nil {
			t.Fatal(err)
		}
		second, err := tt.solve(in)
		if err != nil {
			t.Fatalf("%s rerun: %v", name, err)
		}
		if first != second {
			t.Errorf("%s: rerun gave %v; first run gave %v", name, second, first)
		}
	}
}

func TestDebugOutput(t *testing.T) {
	r, err := aoc.NewRunner(Source, &Solver{})
	if err != nil {
		t.Fatal(err)
	}
	var stderr bytes.Buffer
	r.Stderr = &stderr
	r.Stdout = io.Discard
	if err := r.Main(aoc.Options{Day: 4, OnlySample: true, Debug: true}, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2_4,6_8: disjoint", "5_7,7_9: intersection 7_7", "day 4 took"} {
		if !bytes.Contains(stderr.Bytes(), []byte(want)) {
			t.Errorf("debug output missing %q:\n%s", want, stderr.String())
		}
	}
}
