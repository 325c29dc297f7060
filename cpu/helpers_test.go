package cpu

import (
	"bytes"

	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
	"github.com/hexaflex/rm86/registers"
	"github.com/hexaflex/rm86/stream"
)

// busSpy counts memory bus calls.
type busSpy struct {
	memory.Memory
	calls int
}

func (b *busSpy) NewAddress(segment, offset uint16) memory.Address {
	b.calls++
	return b.Memory.NewAddress(segment, offset)
}

func (b *busSpy) Read8(addr memory.Address) (uint8, error) {
	b.calls++
	return b.Memory.Read8(addr)
}

func (b *busSpy) Read16(addr memory.Address) (uint16, error) {
	b.calls++
	return b.Memory.Read16(addr)
}

func (b *busSpy) Write8(addr memory.Address, value uint8) error {
	b.calls++
	return b.Memory.Write8(addr, value)
}

func (b *busSpy) Write16(addr memory.Address, value uint16) error {
	b.calls++
	return b.Memory.Write16(addr, value)
}

// decodeTest assembles operand encodings for a decoder under test.
type decodeTest struct {
	program bytes.Buffer
	regs    *registers.File
	bus     *busSpy
	stream  *stream.Bytes
}

func newDecodeTest() *decodeTest {
	dt := &decodeTest{
		regs: registers.New(),
		bus:  &busSpy{Memory: memory.New(memory.Capacity)},
	}

	dt.regs.SetReg16(arch.BX, 0x1000)
	dt.regs.SetReg16(arch.BP, 0x2000)
	dt.regs.SetReg16(arch.SI, 0x0100)
	dt.regs.SetReg16(arch.DI, 0x0010)
	dt.regs.SetSeg(arch.ES, 0x0100)
	dt.regs.SetSeg(arch.CS, 0x0200)
	dt.regs.SetSeg(arch.DS, 0x0300)
	dt.regs.SetSeg(arch.SS, 0x0400)
	return dt
}

// emit writes a ModRM byte followed by the given displacement bytes.
func (dt *decodeTest) emit(mux arch.Mux, reg, rm int, disp ...byte) {
	dt.program.WriteByte(byte(arch.NewModRM(mux, reg, rm)))
	dt.program.Write(disp)
}

// decoder returns a decoder reading the emitted program.
func (dt *decodeTest) decoder(trace TraceFunc) *Decoder {
	dt.stream = stream.NewBytes(dt.program.Bytes())
	return New(dt.stream, dt.regs, dt.bus, trace)
}
