package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the int value of the string. The returned error matches
// ErrParse.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ParseErrorf("%w", err)
	}
	return n, nil
}

// MustInt is like Int but panics on malformed input.
func MustInt(s string) int {
	return MustGet(Int(s))
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}
