package aoc

import "fmt"

// Answer is the result of solving both parts of a day.
type Answer struct {
	part1, part2 string
}

// NewAnswer returns an Answer holding the fmt.Sprint form of both parts.
func NewAnswer(part1, part2 any) Answer {
	return Answer{
		part1: fmt.Sprint(part1),
		part2: fmt.Sprint(part2),
	}
}

func (a Answer) Part1() string { return a.part1 }
func (a Answer) Part2() string { return a.part2 }

func (a Answer) String() string {
	return fmt.Sprintf("part1: %s part2: %s", a.part1, a.part2)
}
