package horoscope

import (
	"fmt"
	"math"
)

const scoreOutcomes = 101

// ChooseIndex maps a uniform sample onto [0, n).
func ChooseIndex(sample float64, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: list length must be positive, got %d", ErrInvalidArgument, n)
	}
	idx := int(math.Floor(sample * float64(n)))
	switch {
	case idx < 0:
		return 0, nil
	case idx >= n:
		return n - 1, nil
	}
	return idx, nil
}

// Score maps a uniform sample onto the inclusive range [0, 100].
func Score(sample float64) int {
	idx, _ := ChooseIndex(sample, scoreOutcomes)
	return idx
}

func pick(list []string, seed Seed) (string, error) {
	idx, err := ChooseIndex(Uniform(seed), len(list))
	if err != nil {
		return "", err
	}
	return list[idx], nil
}
