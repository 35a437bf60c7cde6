package calculator

import "fmt"

// InvalidDateError is returned when a payment date string cannot be parsed.
// Callers must treat the account status as unknown.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// InvalidNumberError is returned when a monetary or quantity input is
// negative, NaN or infinite.
type InvalidNumberError struct {
	Field string
	Value float64
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid %s: %v (must be a finite, non-negative number)", e.Field, e.Value)
}
