// Package stream implements instruction byte streams for the operand decoder.
package stream

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
)

// ErrExhausted is returned when a stream has no bytes left to fetch.
var ErrExhausted = errors.New("stream: exhausted")

// Memory defines the memory operations needed to fetch code.
type Memory interface {
	NewAddress(segment, offset uint16) memory.Address
	Read8(addr memory.Address) (uint8, error)
}

// Registers defines the registers which locate the code stream.
type Registers interface {
	Seg(s arch.Segment) uint16
	IP() uint16
	SetIP(value uint16)
}

// Fetcher reads instruction bytes from memory at CS:IP.
type Fetcher struct {
	mem   Memory    // Code memory.
	regs  Registers // Provides CS and IP.
	limit int       // Maximum number of bytes to fetch; 0 is unbounded.
	count int       // Bytes fetched so far.
}

// NewFetcher creates a fetcher for the given memory and registers.
func NewFetcher(mem Memory, regs Registers) *Fetcher {
	return &Fetcher{
		mem:  mem,
		regs: regs,
	}
}

// Limit bounds the number of bytes the fetcher will read before it reports
// ErrExhausted, e.g. to the size of a loaded program. Zero removes the bound.
// The byte count is reset.
func (f *Fetcher) Limit(n int) {
	f.limit = n
	f.count = 0
}

// Count returns the number of bytes fetched since the last call to Limit.
func (f *Fetcher) Count() int {
	return f.count
}

// Next8 reads the next byte at CS:IP and increments IP.
func (f *Fetcher) Next8() (uint8, error) {
	ip := f.regs.IP()

	if f.limit > 0 && f.count >= f.limit {
		return 0, errors.Wrapf(ErrExhausted, "cs:ip %04x:%04x", f.regs.Seg(arch.CS), ip)
	}

	v, err := f.mem.Read8(f.mem.NewAddress(f.regs.Seg(arch.CS), ip))
	if err != nil {
		return 0, err
	}

	f.regs.SetIP(ip + 1)
	f.count++
	return v, nil
}

// Next16 reads the next little-endian 16-bit value at CS:IP and increments IP
// by two. If the high byte cannot be read, IP has already moved past the low
// byte.
func (f *Fetcher) Next16() (uint16, error) {
	lo, err := f.Next8()
	if err != nil {
		return 0, err
	}

	hi, err := f.Next8()
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// Bytes reads instruction bytes from a byte slice.
type Bytes struct {
	data []byte
	pos  int
}

// NewBytes creates a stream over p. The slice is not copied.
func NewBytes(p []byte) *Bytes {
	return &Bytes{data: p}
}

// Count returns the number of bytes consumed.
func (b *Bytes) Count() int {
	return b.pos
}

// Remaining returns the number of bytes left in the stream.
func (b *Bytes) Remaining() int {
	return len(b.data) - b.pos
}

// Next8 returns the next byte.
func (b *Bytes) Next8() (uint8, error) {
	if b.pos >= len(b.data) {
		return 0, errors.Wrapf(ErrExhausted, "offset %d", b.pos)
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// Next16 returns the next little-endian 16-bit value.
func (b *Bytes) Next16() (uint16, error) {
	lo, err := b.Next8()
	if err != nil {
		return 0, err
	}

	hi, err := b.Next8()
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}
