// Package memory implements the real-mode memory bus.
package memory

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	Capacity    = 0x100000     // Size of the real-mode address space.
	AddressMask = Capacity - 1 // Physical addresses wrap at 1 MiB.
)

// Address defines a 20-bit physical address.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("%05x", uint32(a))
}

// AddressError is returned when an access falls outside installed memory.
type AddressError struct {
	Address Address // Offending physical address.
	Width   int     // Access width in bytes.
	Write   bool    // Was the access a write?
}

func (e *AddressError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("memory: %d-byte %s at %s is outside installed memory", e.Width, op, e.Address)
}

// Memory defines the system's memory bank.
type Memory []byte

// New creates a memory bank with the given capacity in bytes.
// The capacity is clamped to the real-mode address space.
func New(capacity int) Memory {
	if capacity <= 0 || capacity > Capacity {
		capacity = Capacity
	}
	return make(Memory, capacity)
}

// NewAddress builds the physical address for the given segment and offset.
func (m Memory) NewAddress(segment, offset uint16) Address {
	return (Address(segment)<<4 + Address(offset)) & AddressMask
}

// Read8 returns the 8-bit value at the given address.
func (m Memory) Read8(addr Address) (uint8, error) {
	if int(addr) >= len(m) {
		return 0, &AddressError{Address: addr, Width: 1}
	}
	return m[addr], nil
}

// Write8 sets the 8-bit value at the given address.
func (m Memory) Write8(addr Address, value uint8) error {
	if int(addr) >= len(m) {
		return &AddressError{Address: addr, Width: 1, Write: true}
	}
	m[addr] = value
	return nil
}

// Read16 returns the little-endian 16-bit value at the given address.
// The high byte is read from the next address, wrapping at 1 MiB.
func (m Memory) Read16(addr Address) (uint16, error) {
	hi := (addr + 1) & AddressMask
	if int(addr) >= len(m) || int(hi) >= len(m) {
		return 0, &AddressError{Address: addr, Width: 2}
	}
	return uint16(m[hi])<<8 | uint16(m[addr]), nil
}

// Write16 sets the little-endian 16-bit value at the given address.
func (m Memory) Write16(addr Address, value uint16) error {
	hi := (addr + 1) & AddressMask
	if int(addr) >= len(m) || int(hi) >= len(m) {
		return &AddressError{Address: addr, Width: 2, Write: true}
	}
	m[addr] = byte(value)
	m[hi] = byte(value >> 8)
	return nil
}

// Load writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Load(addr Address, p []byte) error {
	if int(addr)+len(p) > len(m) {
		return errors.Wrapf(&AddressError{Address: addr, Width: len(p), Write: true},
			"load %d bytes", len(p))
	}
	copy(m[addr:], p)
	return nil
}

// Read reads len(p) bytes from memory into p, starting at the given address.
// Returns the number of bytes read, which is short at the end of memory.
func (m Memory) Read(addr Address, p []byte) int {
	if int(addr) >= len(m) {
		return 0
	}
	return copy(p, m[addr:])
}

// Clear zeroes all of memory.
func (m Memory) Clear() {
	for i := range m {
		m[i] = 0
	}
}
