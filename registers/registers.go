// Package registers implements the 8086 register file.
package registers

import (
	"fmt"
	"strings"

	"github.com/hexaflex/rm86/arch"
)

// File holds the general purpose, segment and instruction pointer registers.
type File struct {
	gp  [8]uint16                 // AX, CX, DX, BX, SP, BP, SI, DI.
	seg [arch.SegmentCount]uint16 // ES, CS, SS, DS.
	ip  uint16                    // Instruction pointer.
}

// New creates a zeroed register file.
func New() *File {
	return &File{}
}

// Reset clears all registers.
func (f *File) Reset() {
	*f = File{}
}

// Reg8 returns the 8-bit register with the given index.
// Indices 0-3 address the low byte of AX-BX and 4-7 the high byte.
func (f *File) Reg8(index int) uint8 {
	if index < 4 {
		return uint8(f.gp[index])
	}
	return uint8(f.gp[index-4] >> 8)
}

// SetReg8 sets the 8-bit register with the given index.
func (f *File) SetReg8(index int, value uint8) {
	if index < 4 {
		f.gp[index] = f.gp[index]&0xff00 | uint16(value)
		return
	}
	f.gp[index-4] = f.gp[index-4]&0x00ff | uint16(value)<<8
}

// Reg16 returns the 16-bit register with the given index.
func (f *File) Reg16(index int) uint16 {
	return f.gp[index]
}

// SetReg16 sets the 16-bit register with the given index.
func (f *File) SetReg16(index int, value uint16) {
	f.gp[index] = value
}

// Seg returns the given segment register.
func (f *File) Seg(s arch.Segment) uint16 {
	return f.seg[s]
}

// SetSeg sets the given segment register.
func (f *File) SetSeg(s arch.Segment, value uint16) {
	f.seg[s] = value
}

// IP returns the instruction pointer.
func (f *File) IP() uint16 {
	return f.ip
}

// SetIP sets the instruction pointer.
func (f *File) SetIP(value uint16) {
	f.ip = value
}

func (f *File) AX() uint16 { return f.gp[arch.AX] }
func (f *File) BX() uint16 { return f.gp[arch.BX] }
func (f *File) BP() uint16 { return f.gp[arch.BP] }
func (f *File) SI() uint16 { return f.gp[arch.SI] }
func (f *File) DI() uint16 { return f.gp[arch.DI] }

func (f *File) String() string {
	var sb strings.Builder
	for i, v := range f.gp {
		fmt.Fprintf(&sb, "%s=%04x ", arch.Reg16Name(i), v)
	}
	for i, v := range f.seg {
		fmt.Fprintf(&sb, "%s=%04x ", arch.Segment(i), v)
	}
	fmt.Fprintf(&sb, "ip=%04x", f.ip)
	return sb.String()
}
