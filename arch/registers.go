package arch

import "strings"

// Indices of the 16-bit general purpose registers, in encoding order.
const (
	AX = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// Indices of the 8-bit registers, in encoding order. Indices 0-3 address the
// low byte of AX-BX and 4-7 the high byte.
const (
	AL = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

var (
	reg16Names = [...]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
	reg8Names  = [...]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}
)

// Segment defines a segment register index.
type Segment int

// Known segment registers, in encoding order.
const (
	ES Segment = iota
	CS
	SS
	DS
)

// SegmentCount is the number of segment registers.
const SegmentCount = 4

func (s Segment) String() string {
	switch s {
	case ES:
		return "es"
	case CS:
		return "cs"
	case SS:
		return "ss"
	case DS:
		return "ds"
	}
	return ""
}

// SegmentIndex returns the segment register for the 3-bit reg field of a
// ModRM byte. The 8086 only decodes the two low bits of the field.
func SegmentIndex(reg int) Segment {
	return Segment(reg & 0x3)
}

// IsRegister returns true if the given name represents a known register.
func IsRegister(name string) bool {
	_, _, ok := RegisterIndex(name)
	return ok
}

// RegisterIndex returns the index for the given register and whether it
// names a 16-bit register. Segment registers are not included.
// Returns false if the name is not recognized.
func RegisterIndex(name string) (index int, wide bool, ok bool) {
	name = strings.ToLower(name)
	for i, n := range reg16Names {
		if n == name {
			return i, true, true
		}
	}
	for i, n := range reg8Names {
		if n == name {
			return i, false, true
		}
	}
	return -1, false, false
}

// SegmentByName returns the segment register with the given name.
// Returns false if the name is not recognized.
func SegmentByName(name string) (Segment, bool) {
	switch strings.ToLower(name) {
	case "es":
		return ES, true
	case "cs":
		return CS, true
	case "ss":
		return SS, true
	case "ds":
		return DS, true
	}
	return -1, false
}

// Reg16Name returns the name associated with the given 16-bit register index.
// Returns "" if the index is not recognized.
func Reg16Name(n int) string {
	if n < 0 || n >= len(reg16Names) {
		return ""
	}
	return reg16Names[n]
}

// Reg8Name returns the name associated with the given 8-bit register index.
// Returns "" if the index is not recognized.
func Reg8Name(n int) string {
	if n < 0 || n >= len(reg8Names) {
		return ""
	}
	return reg8Names[n]
}
