// Package cpu implements the 8086 operand addressing decoder.
//
// A Decoder reads the ModRM byte which follows an opcode, fetches any
// displacement bytes and resolves the memory operand to either a physical
// address or a register. The opcode layer then reads and writes both operands
// through the decoder's accessors:
//
//	d := cpu.New(fetcher, regs, mem, nil)
//
//	// ADD r/m16, r16
//	if err := d.Decode(); err != nil {
//		return err
//	}
//	v, err := d.Mem16()
//	if err != nil {
//		return err
//	}
//	err = d.SetMem16(v + d.Reg16())
//
// The decoder owns none of its collaborators and is not safe for concurrent
// use. One decoder is reused for every instruction.
package cpu

import (
	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
)

// Stream defines the instruction byte stream. Both methods advance the
// stream's cursor.
type Stream interface {
	Next8() (uint8, error)
	Next16() (uint16, error)
}

// Registers defines the register file.
type Registers interface {
	Reg8(index int) uint8
	SetReg8(index int, value uint8)
	Reg16(index int) uint16
	SetReg16(index int, value uint16)
	Seg(s arch.Segment) uint16
	SetSeg(s arch.Segment, value uint16)
}

// Memory defines the memory bus.
type Memory interface {
	NewAddress(segment, offset uint16) memory.Address
	Read8(addr memory.Address) (uint8, error)
	Read16(addr memory.Address) (uint16, error)
	Write8(addr memory.Address, value uint8) error
	Write16(addr memory.Address, value uint16) error
}

// TraceFunc represents a callback handler for debug trace output.
// It is called after every successful Decode.
type TraceFunc func(*Decoder)

// State defines the resolution state of a decoder.
type State int

// Known states.
const (
	Unresolved State = iota
	ResolvedRegister
	ResolvedMemory
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case ResolvedRegister:
		return "ResolvedRegister"
	case ResolvedMemory:
		return "ResolvedMemory"
	}
	return "unknown state"
}
