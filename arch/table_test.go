package arch

import "testing"

func TestLookup(t *testing.T) {
	bases := [8]Base{BXSI, BXDI, BPSI, BPDI, SIOnly, DIOnly, BPOnly, BXOnly}
	segments := [8]Segment{DS, DS, SS, SS, DS, DS, SS, DS}

	for _, mux := range []Mux{Indirect, IndirectDisp8, IndirectDisp16} {
		for rm := 0; rm < 8; rm++ {
			want := Entry{Base: bases[rm], Segment: segments[rm]}

			switch mux {
			case Indirect:
				if rm == DirectAddressRM {
					want = Entry{Base: DirectAddress, DisplacementSize: 2, Segment: DS}
				}
			case IndirectDisp8:
				want.DisplacementSize = 1
			case IndirectDisp16:
				want.DisplacementSize = 2
			}

			have := Lookup(mux, rm)
			if have != want {
				t.Fatalf("entry mismatch for %s rm=%d:\nwant: %+v\nhave: %+v", mux, rm, want, have)
			}

			if have.DisplacementSize != mux.DisplacementSize(rm) {
				t.Fatalf("displacement size mismatch for %s rm=%d: want %d; have %d",
					mux, rm, have.DisplacementSize, mux.DisplacementSize(rm))
			}
		}
	}
}

func TestLookupDirectPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(InvariantError)
		if !ok {
			t.Fatalf("expected InvariantError panic")
		}
		if err.Field != "mux" || err.Value != int(Direct) {
			t.Fatalf("unexpected panic value: %v", err)
		}
	}()
	Lookup(Direct, 0)
}

func TestLookupRMPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(InvariantError); !ok {
			t.Fatalf("expected InvariantError panic")
		}
	}()
	Lookup(Indirect, 8)
}

func TestModRM(t *testing.T) {
	m := ModRM(0x46) // 01 000 110

	if m.Mux() != IndirectDisp8 {
		t.Fatalf("mux: want %s; have %s", IndirectDisp8, m.Mux())
	}
	if m.Reg() != 0 {
		t.Fatalf("reg: want 0; have %d", m.Reg())
	}
	if m.RM() != 6 {
		t.Fatalf("rm: want 6; have %d", m.RM())
	}

	for b := 0; b < 0x100; b++ {
		m := ModRM(b)
		if NewModRM(m.Mux(), m.Reg(), m.RM()) != m {
			t.Fatalf("reassembly of %02x yields %02x", b, byte(NewModRM(m.Mux(), m.Reg(), m.RM())))
		}
	}
}

func TestBaseRegisters(t *testing.T) {
	if r := DirectAddress.Registers(); len(r) != 0 {
		t.Fatalf("direct address: want no registers; have %v", r)
	}

	r := BPDI.Registers()
	if len(r) != 2 || r[0] != BP || r[1] != DI {
		t.Fatalf("bp+di: want [%d %d]; have %v", BP, DI, r)
	}
}

func TestSegmentPrefix(t *testing.T) {
	for _, s := range []Segment{ES, CS, SS, DS} {
		op, ok := PrefixOpcode(s)
		if !ok {
			t.Fatalf("no prefix for %s", s)
		}

		have, ok := SegmentPrefix(op)
		if !ok || have != s {
			t.Fatalf("prefix %02x: want %s; have %s", op, s, have)
		}
	}

	if _, ok := SegmentPrefix(0x90); ok {
		t.Fatalf("0x90 is not a segment prefix")
	}
}

func TestRegisterIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		wide  bool
	}{
		{"AX", AX, true},
		{"bp", BP, true},
		{"di", DI, true},
		{"al", AL, false},
		{"BH", BH, false},
	}

	for _, test := range tests {
		index, wide, ok := RegisterIndex(test.name)
		if !ok || index != test.index || wide != test.wide {
			t.Fatalf("RegisterIndex(%q): want %d, %v; have %d, %v", test.name, test.index, test.wide, index, wide)
		}
	}

	if IsRegister("ds") {
		t.Fatalf("segment registers are not general registers")
	}
	if s, ok := SegmentByName("SS"); !ok || s != SS {
		t.Fatalf("SegmentByName(SS): have %s, %v", s, ok)
	}
}
