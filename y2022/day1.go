package y2022

import (
	aoc "github.com/maujim/advent-of-code-2022"
)

/*
want=part1: 24000 part2: 45000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s Solver) D1(in aoc.LineSource) (aoc.Answer, error) {
	top := aoc.NewTopN[int](3)
	sum := 0
	err := in.ForLines(func(line string) error {
		if line == "" {
			top.Offer(sum)
			sum = 0
			return nil
		}
		n, err := aoc.Int(line)
		if err != nil {
			return err
		}
		sum += n
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}
	// The last group has no blank line after it unless the file ends
	// with one. Offering a zero sum is a no-op.
	top.Offer(sum)
	s.Debugf("top groups: %v", top.Values())
	return aoc.NewAnswer(top.Max(), top.Sum()), nil
}
