// Command gonedebug single-steps a raw 6502 program through an interactive
// TUI, built on top of the cpu package's Debug entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"nes6502/cpu"
	"nes6502/mem"
)

func main() {
	addr := flag.Uint("addr", 0x0600, "address to load the program at")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gonedebug [-addr 0x0600] <program-file>")
		os.Exit(2)
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gonedebug:", err)
		os.Exit(1)
	}

	bus := mem.NewBus()
	c := cpu.New(bus)
	c.Debug(program, uint16(*addr))
}
