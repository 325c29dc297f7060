package arch

// Mux defines the addressing class selected by the top two bits of a ModRM byte.
type Mux byte

// Known addressing classes.
const (
	Indirect       Mux = 0 // x = mem[bx+si]
	IndirectDisp8  Mux = 1 // x = mem[bx+si+12h]
	IndirectDisp16 Mux = 2 // x = mem[bx+si+1234h]
	Direct         Mux = 3 // x = ax
)

func (m Mux) String() string {
	switch m {
	case Indirect:
		return "Indirect"
	case IndirectDisp8:
		return "IndirectDisp8"
	case IndirectDisp16:
		return "IndirectDisp16"
	case Direct:
		return "Direct"
	}
	return "unknown addressing class"
}

// IsMemory returns true if the class addresses memory rather than a register.
func (m Mux) IsMemory() bool {
	return m < Direct
}

// DisplacementSize returns the number of displacement bytes which follow
// the ModRM byte for this class and the given rm field.
func (m Mux) DisplacementSize(rm int) int {
	switch m {
	case Indirect:
		if rm == DirectAddressRM {
			return 2
		}
		return 0
	case IndirectDisp8:
		return 1
	case IndirectDisp16:
		return 2
	case Direct:
		return 0
	}
	panic(InvariantError{Field: "mux", Value: int(m)})
}
