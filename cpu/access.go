package cpu

import "github.com/hexaflex/rm86/arch"

// Reg8 returns the 8-bit register selected by the reg field.
func (d *Decoder) Reg8() uint8 {
	return d.regs.Reg8(d.modrm.Reg())
}

// SetReg8 sets the 8-bit register selected by the reg field.
func (d *Decoder) SetReg8(value uint8) {
	d.regs.SetReg8(d.modrm.Reg(), value)
}

// Reg16 returns the 16-bit register selected by the reg field.
func (d *Decoder) Reg16() uint16 {
	return d.regs.Reg16(d.modrm.Reg())
}

// SetReg16 sets the 16-bit register selected by the reg field.
func (d *Decoder) SetReg16(value uint16) {
	d.regs.SetReg16(d.modrm.Reg(), value)
}

// Seg returns the segment register selected by the reg field.
func (d *Decoder) Seg() uint16 {
	return d.regs.Seg(arch.SegmentIndex(d.modrm.Reg()))
}

// SetSeg sets the segment register selected by the reg field.
func (d *Decoder) SetSeg(value uint16) {
	d.regs.SetSeg(arch.SegmentIndex(d.modrm.Reg()), value)
}

// Mem8 returns the 8-bit value of the r/m operand.
func (d *Decoder) Mem8() (uint8, error) {
	switch op := d.operand.(type) {
	case MemoryOperand:
		return d.mem.Read8(op.Address)
	case RegisterOperand:
		return d.regs.Reg8(op.Index), nil
	}
	panic(ErrUnresolved)
}

// SetMem8 sets the 8-bit value of the r/m operand.
func (d *Decoder) SetMem8(value uint8) error {
	switch op := d.operand.(type) {
	case MemoryOperand:
		return d.mem.Write8(op.Address, value)
	case RegisterOperand:
		d.regs.SetReg8(op.Index, value)
		return nil
	}
	panic(ErrUnresolved)
}

// Mem16 returns the 16-bit value of the r/m operand.
func (d *Decoder) Mem16() (uint16, error) {
	switch op := d.operand.(type) {
	case MemoryOperand:
		return d.mem.Read16(op.Address)
	case RegisterOperand:
		return d.regs.Reg16(op.Index), nil
	}
	panic(ErrUnresolved)
}

// SetMem16 sets the 16-bit value of the r/m operand.
func (d *Decoder) SetMem16(value uint16) error {
	switch op := d.operand.(type) {
	case MemoryOperand:
		return d.mem.Write16(op.Address, value)
	case RegisterOperand:
		d.regs.SetReg16(op.Index, value)
		return nil
	}
	panic(ErrUnresolved)
}
