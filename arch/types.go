package arch

import "fmt"

// ModRM defines the addressing byte which follows an opcode: MM RRR III.
//
//	M - addressing class (mux)
//	R - register operand index
//	I - memory operand index, or a register in the Direct class
type ModRM byte

// NewModRM assembles a ModRM byte from its components.
// Out of range components are truncated to their field width.
func NewModRM(mux Mux, reg, rm int) ModRM {
	return ModRM(byte(mux&0x3)<<6 | byte(reg&0x7)<<3 | byte(rm&0x7))
}

// Mux returns the addressing class.
func (m ModRM) Mux() Mux {
	return Mux(m>>6) & 0x3
}

// Reg returns the register operand index in the range [0, 7].
func (m ModRM) Reg() int {
	return int(m>>3) & 0x7
}

// RM returns the memory operand index in the range [0, 7].
func (m ModRM) RM() int {
	return int(m) & 0x7
}

func (m ModRM) String() string {
	return fmt.Sprintf("%02x (mux=%d reg=%d rm=%d)", byte(m), m.Mux(), m.Reg(), m.RM())
}
