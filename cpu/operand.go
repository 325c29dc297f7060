package cpu

import (
	"fmt"
	"strings"

	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
)

// Operand defines a resolved r/m operand. It is either a RegisterOperand or
// a MemoryOperand.
type Operand interface {
	// Format returns the operand in assembler syntax, as a byte or word operand.
	Format(wide bool) string

	isOperand()
}

// RegisterOperand is an r/m operand which names a register (mux 3).
type RegisterOperand struct {
	Index int // Register index in the range [0, 7].
}

func (RegisterOperand) isOperand() {}

// Format returns the register name.
func (op RegisterOperand) Format(wide bool) string {
	if wide {
		return arch.Reg16Name(op.Index)
	}
	return arch.Reg8Name(op.Index)
}

// MemoryOperand is an r/m operand which addresses memory (mux 0-2).
type MemoryOperand struct {
	Base             arch.Base      // Registers summed into the offset.
	Displacement     uint16         // Sign-extended displacement or direct address.
	DisplacementSize int            // Number of displacement bytes fetched.
	Segment          arch.Segment   // Segment register the address was built from.
	Overridden       bool           // Was the segment selected by an override?
	Offset           uint16         // Effective address.
	Address          memory.Address // Physical address.
}

func (MemoryOperand) isOperand() {}

// Format returns the operand in Intel syntax, e.g. "word ss:[bp+0x05]".
// The segment is only shown when it was overridden.
func (op MemoryOperand) Format(wide bool) string {
	var sb strings.Builder

	if wide {
		sb.WriteString("word ")
	} else {
		sb.WriteString("byte ")
	}

	if op.Overridden {
		sb.WriteString(op.Segment.String())
		sb.WriteByte(':')
	}

	sb.WriteByte('[')
	switch {
	case op.Base == arch.DirectAddress:
		fmt.Fprintf(&sb, "0x%04x", op.Displacement)
	case op.DisplacementSize == 1:
		disp := int8(op.Displacement)
		if disp < 0 {
			fmt.Fprintf(&sb, "%s-0x%02x", op.Base, -int(disp))
		} else {
			fmt.Fprintf(&sb, "%s+0x%02x", op.Base, disp)
		}
	case op.DisplacementSize == 2:
		fmt.Fprintf(&sb, "%s+0x%04x", op.Base, op.Displacement)
	default:
		sb.WriteString(op.Base.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
