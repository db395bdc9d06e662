package perk

import (
	"errors"
	"fmt"
)

// ErrNegativeLevel is returned when a level bound is below zero.
var ErrNegativeLevel = errors.New("perk: level bound must not be negative")

func checkBound(maxLevelExclusive int) error {
	if maxLevelExclusive < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLevel, maxLevelExclusive)
	}
	return nil
}
