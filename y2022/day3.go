package y2022

import (
	aoc "github.com/maujim/advent-of-code-2022"
)

// Priority returns the score of an item: a-z are 1-26, A-Z are 27-52.
func Priority(item byte) (int, error) {
	switch {
	case 'a' <= item && item <= 'z':
		return int(item-'a') + 1, nil
	case 'A' <= item && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, aoc.UnrecognizedErrorf("item %q", item)
}

func checkItems(line string) error {
	for i := 0; i < len(line); i++ {
		if _, err := Priority(line[i]); err != nil {
			return err
		}
	}
	return nil
}

// compartmentScore scores every item of the second half of line that
// also appears in the first half. An item repeated in the second half
// is scored each time.
func compartmentScore(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, aoc.ParseErrorf("rucksack has odd length %d", len(line))
	}
	if err := checkItems(line); err != nil {
		return 0, err
	}
	half := len(line) / 2
	first := aoc.SetOf([]byte(line[:half])...)
	score := 0
	for i := half; i < len(line); i++ {
		if first.Contains(line[i]) {
			score += aoc.MustGet(Priority(line[i]))
		}
	}
	return score, nil
}

// badge returns the first item of group[0] that is in every rucksack of
// the group.
func badge(group []string) (byte, error) {
	common := aoc.SetOf([]byte(group[1])...).Intersect(aoc.SetOf([]byte(group[2])...))
	for i := 0; i < len(group[0]); i++ {
		if common.Contains(group[0][i]) {
			return group[0][i], nil
		}
	}
	return 0, aoc.LogicErrorf("no common item in group")
}

/*
want=part1: 237 part2: 70

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s Solver) D3(in aoc.LineSource) (aoc.Answer, error) {
	part1 := 0
	err := in.ForLines(func(line string) error {
		score, err := compartmentScore(line)
		if err != nil {
			return err
		}
		half := len(line) / 2
		shared := aoc.SetOf([]byte(line[:half])...).Intersect(aoc.SetOf([]byte(line[half:])...))
		s.Debugf("%s: shared %q, score %d", line, aoc.SortedKeys(shared), score)
		part1 += score
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}

	if err := in.Rewind(); err != nil {
		return aoc.Answer{}, err
	}

	part2 := 0
	group := make([]string, 0, 3)
	err = in.ForLines(func(line string) error {
		if err := checkItems(line); err != nil {
			return err
		}
		group = append(group, line)
		if len(group) < 3 {
			return nil
		}
		b, err := badge(group)
		if err != nil {
			return err
		}
		s.Debugf("badge %q", b)
		part2 += aoc.MustGet(Priority(b))
		group = group[:0]
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}
	if len(group) != 0 {
		return aoc.Answer{}, aoc.ParseErrorf("last group has %d rucksacks; want 3", len(group))
	}
	return aoc.NewAnswer(part1, part2), nil
}
