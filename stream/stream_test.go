package stream

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/memory"
	"github.com/hexaflex/rm86/registers"
)

func TestBytes(t *testing.T) {
	s := NewBytes([]byte{0x46, 0x34, 0x12, 0xff})

	b, err := s.Next8()
	if err != nil || b != 0x46 {
		t.Fatalf("Next8: want 46; have %02x (%v)", b, err)
	}

	w, err := s.Next16()
	if err != nil || w != 0x1234 {
		t.Fatalf("Next16: want 1234; have %04x (%v)", w, err)
	}

	if s.Count() != 3 || s.Remaining() != 1 {
		t.Fatalf("want count 3, remaining 1; have %d, %d", s.Count(), s.Remaining())
	}

	// a word read across the end consumes the last byte before failing
	if _, err := s.Next16(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted; have %v", err)
	}
	if s.Count() != 4 {
		t.Fatalf("want count 4; have %d", s.Count())
	}

	if _, err := s.Next8(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted; have %v", err)
	}
}

func TestFetcher(t *testing.T) {
	mem := memory.New(memory.Capacity)
	regs := registers.New()
	regs.SetSeg(arch.CS, 0x07c0)
	regs.SetIP(0xfffe)

	// CS:FFFE and CS:FFFF, then IP wraps to CS:0000
	mem[mem.NewAddress(0x07c0, 0xfffe)] = 0x86
	mem[mem.NewAddress(0x07c0, 0xffff)] = 0x34
	mem[mem.NewAddress(0x07c0, 0x0000)] = 0x12

	f := NewFetcher(mem, regs)

	b, err := f.Next8()
	if err != nil || b != 0x86 {
		t.Fatalf("Next8: want 86; have %02x (%v)", b, err)
	}

	w, err := f.Next16()
	if err != nil || w != 0x1234 {
		t.Fatalf("Next16: want 1234; have %04x (%v)", w, err)
	}

	if regs.IP() != 0x0001 {
		t.Fatalf("ip: want 0001; have %04x", regs.IP())
	}
	if f.Count() != 3 {
		t.Fatalf("count: want 3; have %d", f.Count())
	}
}

func TestFetcherLimit(t *testing.T) {
	mem := memory.New(memory.Capacity)
	regs := registers.New()
	f := NewFetcher(mem, regs)
	f.Limit(2)

	if _, err := f.Next16(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Next8(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted; have %v", err)
	}
	if regs.IP() != 2 {
		t.Fatalf("exhausted fetch moved ip to %04x", regs.IP())
	}
}

func TestFetcherMemoryError(t *testing.T) {
	mem := memory.New(0x100)
	regs := registers.New()
	regs.SetIP(0x100)

	_, err := NewFetcher(mem, regs).Next8()

	var ae *memory.AddressError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AddressError; have %v", err)
	}
	if regs.IP() != 0x100 {
		t.Fatalf("failed fetch moved ip to %04x", regs.IP())
	}
}
