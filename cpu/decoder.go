package cpu

import (
	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
)

// Decoder resolves the operands of one instruction at a time.
type Decoder struct {
	stream Stream    // Instruction bytes.
	regs   Registers // Register file.
	mem    Memory    // Memory bus.
	trace  TraceFunc // Handler for debug trace output.

	modrm   arch.ModRM // Most recently decoded ModRM byte.
	operand Operand    // Resolved r/m operand; nil while unresolved.
	length  int        // Bytes fetched by the last Decode.

	override      arch.Segment // Pending segment override.
	overrideArmed bool         // Is the override pending?
}

// New creates a decoder for the given collaborators.
// Optionally with the given debug trace handler.
func New(s Stream, regs Registers, mem Memory, trace TraceFunc) *Decoder {
	if trace == nil {
		trace = func(*Decoder) { /* nop */ }
	}

	return &Decoder{
		stream: s,
		regs:   regs,
		mem:    mem,
		trace:  trace,
	}
}

// Override arms a one-shot segment override, as set by a segment prefix. The
// next Decode uses it in place of the table's default segment if the operand
// addresses memory, and discards it otherwise. Either way the override does
// not survive that Decode.
func (d *Decoder) Override(s arch.Segment) {
	d.override = s
	d.overrideArmed = true
}

// PendingOverride returns the armed segment override, if any.
func (d *Decoder) PendingOverride() (arch.Segment, bool) {
	return d.override, d.overrideArmed
}

// Decode fetches the ModRM byte and any displacement from the stream and
// resolves the r/m operand. Stream and memory errors are returned unchanged
// and leave the decoder Unresolved.
func (d *Decoder) Decode() error {
	override, armed := d.override, d.overrideArmed
	d.overrideArmed = false

	d.operand = nil
	d.length = 0

	b, err := d.stream.Next8()
	if err != nil {
		return err
	}
	d.length++
	d.modrm = arch.ModRM(b)

	mux := d.modrm.Mux()
	if !mux.IsMemory() {
		d.operand = RegisterOperand{Index: d.modrm.RM()}
		d.trace(d)
		return nil
	}

	op, err := d.resolve(mux, d.modrm.RM())
	if err != nil {
		return err
	}

	if armed {
		op.Segment = override
		op.Overridden = true
	}
	op.Address = d.mem.NewAddress(d.regs.Seg(op.Segment), op.Offset)

	d.operand = op
	d.trace(d)
	return nil
}

// resolve fetches the displacement and computes the effective address for a
// memory addressing class. The segment is the table's default.
func (d *Decoder) resolve(mux arch.Mux, rm int) (MemoryOperand, error) {
	e := arch.Lookup(mux, rm)

	op := MemoryOperand{
		Base:             e.Base,
		DisplacementSize: e.DisplacementSize,
		Segment:          e.Segment,
	}

	switch e.DisplacementSize {
	case 0:
	case 1:
		b, err := d.stream.Next8()
		if err != nil {
			return op, err
		}
		d.length++
		op.Displacement = uint16(int16(int8(b)))
	case 2:
		w, err := d.stream.Next16()
		if err != nil {
			return op, err
		}
		d.length += 2
		op.Displacement = w
	default:
		panic(arch.InvariantError{Field: "displacement size", Value: e.DisplacementSize})
	}

	// 16-bit register arithmetic wraps silently
	op.Offset = op.Displacement
	for _, r := range e.Base.Registers() {
		op.Offset += d.regs.Reg16(r)
	}

	return op, nil
}

// State returns the resolution state of the decoder.
func (d *Decoder) State() State {
	switch d.operand.(type) {
	case RegisterOperand:
		return ResolvedRegister
	case MemoryOperand:
		return ResolvedMemory
	}
	return Unresolved
}

// ModRM returns the most recently decoded ModRM byte.
func (d *Decoder) ModRM() arch.ModRM {
	return d.modrm
}

// RegIndex returns the reg field: the index of the register operand.
func (d *Decoder) RegIndex() int {
	return d.modrm.Reg()
}

// RMIndex returns the rm field of the most recent ModRM byte.
func (d *Decoder) RMIndex() int {
	return d.modrm.RM()
}

// Operand returns the resolved r/m operand, or nil if Unresolved.
func (d *Decoder) Operand() Operand {
	return d.operand
}

// MemAddress returns the physical address of the resolved r/m operand.
// Returns false if the operand is not in memory.
func (d *Decoder) MemAddress() (memory.Address, bool) {
	if op, ok := d.operand.(MemoryOperand); ok {
		return op.Address, true
	}
	return 0, false
}

// Len returns the number of bytes fetched by the last Decode, including the
// ModRM byte.
func (d *Decoder) Len() int {
	return d.length
}

// Format returns the resolved r/m operand in assembler syntax.
// Returns "" if Unresolved.
func (d *Decoder) Format(wide bool) string {
	if d.operand == nil {
		return ""
	}
	return d.operand.Format(wide)
}
