// Package y2022 holds the solutions for Advent of Code 2022.
//
// Each day is a method D{day} on Solver. A block comment of the form
//
//	want=part1: <v> part2: <v>
//
//	<sample input>
//
// directly above a method registers the sample for that day.
package y2022

import (
	"embed"

	aoc "github.com/maujim/advent-of-code-2022"
)

// Source holds the package sources so the runner can read the samples
// out of the doc comments.
//
//go:embed *.go
var Source embed.FS

type Solver struct {
	*aoc.Puzzle
}
