package arch

import "fmt"

// InvariantError is the panic value raised when an addressing field holds a
// value outside its documented bit width.
type InvariantError struct {
	Field string // Name of the offending field.
	Value int    // Value found in it.
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("arch: %s value %d is outside the addressing table", e.Field, e.Value)
}
