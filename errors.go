package qhyp

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyCollapsed is returned when a mutation is attempted on a
	// set that has already been measured. A collapsed set is terminal.
	ErrAlreadyCollapsed = errors.New("hypothesis set has already collapsed")

	// ErrEmptySet is returned when measurement is attempted on a set
	// holding no hypotheses.
	ErrEmptySet = errors.New("hypothesis set holds no hypotheses")

	// ErrIndexOutOfRange is returned when a caller refers to a hypothesis
	// index that does not exist in the set.
	ErrIndexOutOfRange = errors.New("hypothesis index out of range")
)

func indexError(i int) error {
	return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}
