package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/hexaflex/rm86/memory"
)

// Config defines program configuration.
type Config struct {
	Input      string            // Hex encoded operand bytes.
	Image      string            // Optional path to a binary file with operand bytes.
	Registers  map[string]uint16 // Initial register values by name.
	MemorySize int               // Installed memory in bytes.
	Byte       bool              // Treat operands as 8-bit rather than 16-bit.
	PrintTrace bool              // Log every decode?
	LogLevel   string            // Logrus level name.
}

// registerNames lists the registers which can be set from the command line.
var registerNames = []string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"es", "cs", "ss", "ds", "ip",
}

// regValue parses a 16-bit register value in any base accepted by strconv.
type regValue struct {
	name string
	regs map[string]uint16
}

func (r regValue) String() string {
	if r.regs == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", r.regs[r.name])
}

func (r regValue) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	r.regs[r.name] = uint16(v)
	return nil
}

// parseArgs parses command line arguments as applicable. Defaults are taken
// from RM86_* environment variables.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Registers = make(map[string]uint16)
	c.MemorySize = env.Int("RM86_MEMORY", memory.Capacity)
	c.PrintTrace = env.Bool("RM86_TRACE")
	c.LogLevel = env.Str("RM86_LOG_LEVEL", "info")

	flag.Usage = func() {
		fmt.Printf("%s [options] <hex bytes>\n", os.Args[0])
		flag.PrintDefaults()
	}

	for _, name := range registerNames {
		flag.Var(regValue{name: name, regs: c.Registers}, name, "Initial value of "+strings.ToUpper(name)+".")
	}

	flag.StringVar(&c.Image, "file", c.Image, "Read operand bytes from a binary file instead of the command line.")
	flag.IntVar(&c.MemorySize, "memory", c.MemorySize, "Installed memory in bytes.")
	flag.BoolVar(&c.Byte, "byte", c.Byte, "Decode 8-bit operands.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Log every decoded operand.")
	flag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 && c.Image == "" {
		flag.Usage()
		os.Exit(1)
	}

	c.Input = strings.Join(flag.Args(), "")
	if c.PrintTrace && c.LogLevel == "info" {
		c.LogLevel = "debug"
	}
	return &c
}
