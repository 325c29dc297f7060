// Package arch defines the 8086 operand encoding tables along with
// some related helper functions.
package arch

// Segment override prefix opcodes.
const (
	PrefixES = 0x26
	PrefixCS = 0x2e
	PrefixSS = 0x36
	PrefixDS = 0x3e
)

// SegmentPrefix returns the segment selected by the given prefix opcode.
// Returns false if the opcode is not a segment override prefix.
func SegmentPrefix(op byte) (Segment, bool) {
	switch op {
	case PrefixES:
		return ES, true
	case PrefixCS:
		return CS, true
	case PrefixSS:
		return SS, true
	case PrefixDS:
		return DS, true
	}
	return -1, false
}

// PrefixOpcode returns the override prefix opcode for the given segment.
// Returns false if the segment is not recognized.
func PrefixOpcode(s Segment) (byte, bool) {
	switch s {
	case ES:
		return PrefixES, true
	case CS:
		return PrefixCS, true
	case SS:
		return PrefixSS, true
	case DS:
		return PrefixDS, true
	}
	return 0, false
}
