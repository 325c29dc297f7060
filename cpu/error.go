package cpu

import "github.com/pkg/errors"

// ErrUnresolved is the panic value raised when an operand accessor is used
// before a successful Decode.
var ErrUnresolved = errors.New("cpu: operand accessed before decode")
