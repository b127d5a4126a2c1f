package truthtable

import (
	"fmt"
)

// TooManyVariablesError is returned when a table would have more rows than
// the generator is allowed to produce.
type TooManyVariablesError struct {
	Count int
	Limit int
}

// NewTooManyVariablesError creates a new TooManyVariablesError.
func NewTooManyVariablesError(count, limit int) error {
	return &TooManyVariablesError{Count: count, Limit: limit}
}

func (e TooManyVariablesError) Error() string {
	if e.Count >= 64 {
		return fmt.Sprintf("expression has %d variables, at most %d are allowed", e.Count, e.Limit)
	}
	return fmt.Sprintf("expression has %d variables, at most %d are allowed (%d rows)", e.Count, e.Limit, uint64(1)<<e.Count)
}
