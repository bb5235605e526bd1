package y2022

import (
	"fmt"

	aoc "github.com/maujim/advent-of-code-2022"
)

// Choice is a rock-paper-scissors move.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// ParseChoice decodes A/X as Rock, B/Y as Paper and C/Z as Scissors.
func ParseChoice(b byte) (Choice, error) {
	switch b {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	}
	return 0, aoc.UnrecognizedErrorf("choice %q", b)
}

// beats[c] is the choice c wins against.
var beats = [...]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// After returns the next choice in the cycle Rock, Scissors, Paper. It
// is the choice that c beats.
func (c Choice) After() Choice {
	return beats[c]
}

var outcomes = [3][3]Outcome{
	Rock:     {Rock: Draw, Paper: Loss, Scissors: Win},
	Paper:    {Rock: Win, Paper: Draw, Scissors: Loss},
	Scissors: {Rock: Loss, Paper: Win, Scissors: Draw},
}

// Compare returns the outcome of playing c against other.
func (c Choice) Compare(other Choice) Outcome {
	return outcomes[c][other]
}

// Complement returns the choice that gets outcome o when played
// against c.
func (c Choice) Complement(o Outcome) Choice {
	switch o {
	case Loss:
		return c.After()
	case Win:
		return c.After().After()
	}
	return c
}

func (c Choice) Points() int {
	return int(c) + 1
}

type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseOutcome decodes X as Loss, Y as Draw and Z as Win.
func ParseOutcome(b byte) (Outcome, error) {
	switch b {
	case 'X':
		return Loss, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, aoc.UnrecognizedErrorf("outcome %q", b)
}

func (o Outcome) Points() int {
	return 3 * int(o)
}

// round splits a "<opponent> <code>" line.
func round(line string) (opponent Choice, code byte, err error) {
	if len(line) != 3 || line[1] != ' ' {
		return 0, 0, aoc.ParseErrorf(`want "<opponent> <code>"`)
	}
	opponent, err = ParseChoice(line[0])
	return opponent, line[2], err
}

/*
want=part1: 15 part2: 12

A Y
B X
C Z
*/
func (s Solver) D2(in aoc.LineSource) (aoc.Answer, error) {
	part1 := 0
	err := in.ForLines(func(line string) error {
		opponent, code, err := round(line)
		if err != nil {
			return err
		}
		selected, err := ParseChoice(code)
		if err != nil {
			return err
		}
		part1 += selected.Points() + selected.Compare(opponent).Points()
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
		opponent, code, err := round(line)
		if err != nil {
			return err
		}
		outcome, err := ParseOutcome(code)
		if err != nil {
			return err
		}
		selected := opponent.Complement(outcome)
		s.Debugf("%v vs %v: %v", selected, opponent, outcome)
		part2 += selected.Points() + outcome.Points()
		return nil
	})
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.NewAnswer(part1, part2), nil
}
