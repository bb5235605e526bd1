package y2022

import (
	"fmt"
	"strings"

	aoc "github.com/maujim/advent-of-code-2022"
)

// Range is an inclusive range of section IDs.
type Range struct {
	Lo, Hi int
}

func (r Range) String() string {
	return fmt.Sprintf("%d_%d", r.Lo, r.Hi)
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// Intersect returns the sections shared by r and o. ok is false if
// there are none.
func (r Range) Intersect(o Range) (_ Range, ok bool) {
	if !r.Overlaps(o) {
		return Range{}, false
	}
	return Range{aoc.Max(r.Lo, o.Lo), aoc.Min(r.Hi, o.Hi)}, true
}

func parseBounds(s string) (lo, hi string, err error) {
	for _, sep := range []string{"_", "-"} {
		if lo, hi, ok := strings.Cut(s, sep); ok {
			return lo, hi, nil
		}
	}
	return "", "", aoc.ParseErrorf("range %q has no separator", s)
}

// ParsePair decodes a "a_b,c_d" line into [a b c d]. A '-' is accepted
// in place of '_'.
func ParsePair(line string) ([4]int, error) {
	var out [4]int
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return out, aoc.ParseErrorf("want two comma-separated ranges")
	}
	a, b, err := parseBounds(first)
	if err != nil {
		return out, err
	}
	c, d, err := parseBounds(second)
	if err != nil {
		return out, err
	}
	nums, err := aoc.Ints(a, b, c, d)
	if err != nil {
		return out, err
	}
	copy(out[:], nums)
	return out, nil
}

func parseRanges(line string) (Range, Range, error) {
	v, err := ParsePair(line)
	if err != nil {
		return Range{}, Range{}, err
	}
	a, b := Range{v[0], v[1]}, Range{v[2], v[3]}
	if a.Lo > a.Hi || b.Lo > b.Hi {
		return Range{}, Range{}, aoc.ParseErrorf("range bounds out of order")
	}
	return a, b, nil
}

/*
want=part1: 2 part2: 4

2_4,6_8
2_3,4_5
5_7,7_9
2_8,3_7
6_6,4_6
2_6,4_8
*/
func (s Solver) D4(in aoc.LineSource) (aoc.Answer, error) {
	part1 := 0
	err := in.ForLines(func(line string) error {
		a, b, err := parseRanges(line)
		if err != nil {
			return err
		}
		if r, ok := a.Intersect(b); ok {
			s.Debugf("%v,%v: intersection %v", a, b, r)
		} else {
			s.Debugf("%v,%v: disjoint", a, b)
		}
		if a.Contains(b) || b.Contains(a) {
			part1++
		}
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}

	if err := in.Rewind(); err != nil {
		return aoc.Answer{}, err
	}

	part2 := 0
	err = in.ForLines(func(line string) error {
		a, b, err := parseRanges(line)
		if err != nil {
			return err
		}
		if a.Overlaps(b) {
			part2++
		}
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.NewAnswer(part1, part2), nil
}
