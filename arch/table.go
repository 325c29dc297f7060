package arch

// Base defines the register combination an effective address is built from.
type Base int

// Known base combinations, in rm encoding order. DirectAddress replaces BPOnly
// in the Indirect class, where the address is a 16-bit immediate.
const (
	BXSI Base = iota
	BXDI
	BPSI
	BPDI
	SIOnly
	DIOnly
	BPOnly
	BXOnly
	DirectAddress
)

// DirectAddressRM is the rm value which selects a direct address in the
// Indirect class.
const DirectAddressRM = 6

func (b Base) String() string {
	switch b {
	case BXSI:
		return "bx+si"
	case BXDI:
		return "bx+di"
	case BPSI:
		return "bp+si"
	case BPDI:
		return "bp+di"
	case SIOnly:
		return "si"
	case DIOnly:
		return "di"
	case BPOnly:
		return "bp"
	case BXOnly:
		return "bx"
	case DirectAddress:
		return ""
	}
	return "unknown base"
}

// Registers returns the 16-bit register indices summed to form the base.
// DirectAddress yields none.
func (b Base) Registers() []int {
	switch b {
	case BXSI:
		return []int{BX, SI}
	case BXDI:
		return []int{BX, DI}
	case BPSI:
		return []int{BP, SI}
	case BPDI:
		return []int{BP, DI}
	case SIOnly:
		return []int{SI}
	case DIOnly:
		return []int{DI}
	case BPOnly:
		return []int{BP}
	case BXOnly:
		return []int{BX}
	case DirectAddress:
		return nil
	}
	panic(InvariantError{Field: "base", Value: int(b)})
}

// Entry defines one row of the effective address table.
type Entry struct {
	Base             Base    // Registers summed into the offset.
	DisplacementSize int     // Number of displacement bytes: 0, 1 or 2.
	Segment          Segment // Default segment register.
}

// table holds the memory addressing classes, indexed by [mux][rm].
// The Direct class has no entry since it addresses a register.
var table = [3][8]Entry{
	Indirect: {
		{BXSI, 0, DS},
		{BXDI, 0, DS},
		{BPSI, 0, SS},
		{BPDI, 0, SS},
		{SIOnly, 0, DS},
		{DIOnly, 0, DS},
		{DirectAddress, 2, DS},
		{BXOnly, 0, DS},
	},
	IndirectDisp8: {
		{BXSI, 1, DS},
		{BXDI, 1, DS},
		{BPSI, 1, SS},
		{BPDI, 1, SS},
		{SIOnly, 1, DS},
		{DIOnly, 1, DS},
		{BPOnly, 1, SS},
		{BXOnly, 1, DS},
	},
	IndirectDisp16: {
		{BXSI, 2, DS},
		{BXDI, 2, DS},
		{BPSI, 2, SS},
		{BPDI, 2, SS},
		{SIOnly, 2, DS},
		{DIOnly, 2, DS},
		{BPOnly, 2, SS},
		{BXOnly, 2, DS},
	},
}

// Lookup returns the effective address table entry for a memory addressing
// class and rm field. It panics with an InvariantError if either lies outside
// the table, which can only happen through a programming error.
func Lookup(mux Mux, rm int) Entry {
	if !mux.IsMemory() {
		panic(InvariantError{Field: "mux", Value: int(mux)})
	}
	if rm < 0 || rm > 7 {
		panic(InvariantError{Field: "rm", Value: rm})
	}
	return table[mux][rm]
}
