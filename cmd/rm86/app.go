package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hexaflex/rm86/arch"
	"github.com/hexaflex/rm86/cpu"
	"github.com/hexaflex/rm86/memory"
	"github.com/hexaflex/rm86/registers"
	"github.com/hexaflex/rm86/stream"
)

// App defines application context.
type App struct {
	config  *Config         // Application configuration.
	out     io.Writer       // Destination for decoded operands.
	regs    *registers.File // Register file.
	mem     memory.Memory   // Memory holding the operand bytes at CS:IP.
	fetcher *stream.Fetcher // Reads operand bytes at CS:IP.
	decoder *cpu.Decoder    // Operand decoder under inspection.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.out = os.Stdout
	a.regs = registers.New()
	a.mem = memory.New(config.MemorySize)
	a.fetcher = stream.NewFetcher(a.mem, a.regs)
	a.decoder = cpu.New(a.fetcher, a.regs, a.mem, a.printTrace)
	return &a
}

// Run loads the operand bytes and decodes them until they are used up.
func (a *App) Run() error {
	logrus.Debug(Version())

	a.loadRegisters()

	program, err := a.loadProgram()
	if err != nil {
		return err
	}

	for a.fetcher.Count() < len(program) {
		if err := a.decodeNext(); err != nil {
			return err
		}
	}

	return nil
}

// loadRegisters copies the configured register values into the register file.
func (a *App) loadRegisters() {
	for name, v := range a.config.Registers {
		if name == "ip" {
			a.regs.SetIP(v)
		} else if s, ok := arch.SegmentByName(name); ok {
			a.regs.SetSeg(s, v)
		} else if index, _, ok := arch.RegisterIndex(name); ok {
			a.regs.SetReg16(index, v)
		}
	}
}

// loadProgram places the operand bytes at CS:IP.
func (a *App) loadProgram() ([]byte, error) {
	var program []byte
	var err error

	if a.config.Image != "" {
		logrus.WithField("file", a.config.Image).Info("loading")
		program, err = os.ReadFile(a.config.Image)
	} else {
		program, err = hex.DecodeString(strings.Join(strings.Fields(a.config.Input), ""))
	}
	if err != nil {
		return nil, errors.Wrap(err, "read operand bytes")
	}

	addr := a.mem.NewAddress(a.regs.Seg(arch.CS), a.regs.IP())
	if err := a.mem.Load(addr, program); err != nil {
		return nil, err
	}

	a.fetcher.Limit(len(program))
	return program, nil
}

// decodeNext consumes any segment prefixes and decodes one operand encoding.
func (a *App) decodeNext() error {
	start := a.regs.IP()

	for {
		b, err := a.mem.Read8(a.mem.NewAddress(a.regs.Seg(arch.CS), a.regs.IP()))
		if err != nil {
			return err
		}

		s, ok := arch.SegmentPrefix(b)
		if !ok {
			break
		}

		if _, err := a.fetcher.Next8(); err != nil {
			return err
		}
		a.decoder.Override(s)
	}

	if err := a.decoder.Decode(); err != nil {
		return errors.Wrapf(err, "decode at %04x", start)
	}

	return a.printOperand(start)
}

// printOperand writes the decoded operand and its current value.
func (a *App) printOperand(start uint16) error {
	d := a.decoder
	wide := !a.config.Byte

	raw := make([]byte, a.regs.IP()-start)
	a.mem.Read(a.mem.NewAddress(a.regs.Seg(arch.CS), start), raw)

	var value string
	if wide {
		v, err := d.Mem16()
		if err != nil {
			return err
		}
		value = fmt.Sprintf("%04x", v)
	} else {
		v, err := d.Mem8()
		if err != nil {
			return err
		}
		value = fmt.Sprintf("%02x", v)
	}

	reg := arch.Reg16Name(d.RegIndex())
	if !wide {
		reg = arch.Reg8Name(d.RegIndex())
	}

	where := "register"
	if addr, ok := d.MemAddress(); ok {
		where = addr.String()
	}

	_, err := fmt.Fprintf(a.out, "%04x  %-12s %-22s %-3s  %-8s %s\n",
		start, hex.EncodeToString(raw), d.Format(wide), reg, where, value)
	return err
}

// printTrace logs decoder state after every decode. This can be toggled
// through a.config.PrintTrace.
func (a *App) printTrace(d *cpu.Decoder) {
	if !a.config.PrintTrace {
		return
	}

	fields := logrus.Fields{
		"modrm": fmt.Sprintf("%02x", byte(d.ModRM())),
		"mux":   d.ModRM().Mux().String(),
		"reg":   d.RegIndex(),
		"rm":    d.RMIndex(),
		"state": d.State().String(),
		"len":   d.Len(),
	}

	if op, ok := d.Operand().(cpu.MemoryOperand); ok {
		fields["segment"] = op.Segment.String()
		fields["offset"] = fmt.Sprintf("%04x", op.Offset)
		fields["address"] = op.Address.String()
	}

	logrus.WithFields(fields).Debug("decode")
}
