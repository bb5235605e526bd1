// The aoc2022 command solves one day of Advent of Code 2022.
//
// Usage:
//
//	aoc2022 [-day N] [-sample] [-skip-sample] [-debug] [-verify] <input-file>
package main

import (
	"flag"
	"fmt"
	"log"

	aoc "github.com/maujim/advent-of-code-2022"
	"github.com/maujim/advent-of-code-2022/y2022"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("aoc2022: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: aoc2022 [flags] <input-file>\n")
		flag.PrintDefaults()
	}
	aoc.Run(y2022.Source, &y2022.Solver{})
}
