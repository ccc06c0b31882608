/*
 * ARM7TDMI - Debug console commands.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/rcornwell/arm7tdmi/internal/debug"
)

// step runs one instruction, or n when given a repeat count.
func step(line *cmdLine, con *Console) (bool, error) {
	count := 1
	if !line.isEOL() {
		n, err := line.getHex()
		if err != nil {
			return false, err
		}
		count = int(n)
	}

	for range count {
		if err := con.Core.Step(); err != nil {
			return false, err
		}
	}
	fmt.Fprintf(con.Out, "pc=%08x\n", con.Core.PC())
	return false, nil
}

// cont runs Step in a loop on the calling goroutine until a breakpoint is
// hit or Step returns an error (a FatalError, typically); it does not
// support interrupting a run already in progress.
func cont(_ *cmdLine, con *Console) (bool, error) {
	for {
		if err := con.Core.Step(); err != nil {
			return false, err
		}
		if con.Breakpoints[con.Core.PC()] {
			fmt.Fprintf(con.Out, "breakpoint at pc=%08x\n", con.Core.PC())
			return false, nil
		}
	}
}

func reset(_ *cmdLine, con *Console) (bool, error) {
	con.Core.Reset()
	return false, nil
}

func setBreak(line *cmdLine, con *Console) (bool, error) {
	addr, err := line.getHex()
	if err != nil {
		return false, err
	}
	con.Breakpoints[addr] = true
	return false, nil
}

func clearBreak(line *cmdLine, con *Console) (bool, error) {
	addr, err := line.getHex()
	if err != nil {
		return false, err
	}
	delete(con.Breakpoints, addr)
	return false, nil
}

func modeName(m uint32) string {
	switch m & 0x1f {
	case 0x10:
		return "usr"
	case 0x11:
		return "fiq"
	case 0x12:
		return "irq"
	case 0x13:
		return "svc"
	case 0x17:
		return "abt"
	case 0x1b:
		return "und"
	case 0x1f:
		return "sys"
	default:
		return "26-bit"
	}
}

func showRegisters(_ *cmdLine, con *Console) (bool, error) {
	cpu := con.Core
	for n := uint32(0); n < 16; n++ {
		fmt.Fprintf(con.Out, "r%-2d=%08x  ", n, cpu.R(n))
		if n%4 == 3 {
			fmt.Fprintln(con.Out)
		}
	}

	cpsr := cpu.CPSR()
	flags := cpu.Flags()
	fmt.Fprintf(con.Out, "cpsr=%08x mode=%s n=%d z=%d c=%d v=%d\n",
		cpsr, modeName(cpsr),
		boolBit(flags&(1<<31) != 0),
		boolBit(flags&(1<<30) != 0),
		boolBit(flags&(1<<29) != 0),
		boolBit(flags&(1<<28) != 0))
	return false, nil
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func trace(line *cmdLine, _ *Console) (bool, error) {
	name := line.getWord()
	if name == "" {
		return false, errors.New("expected a trace category")
	}
	upper := toUpper(name)
	if !debug.Set(upper) {
		return false, errors.New("unknown trace category: " + name)
	}
	return false, nil
}

func untrace(line *cmdLine, _ *Console) (bool, error) {
	name := line.getWord()
	if name == "" {
		return false, errors.New("expected a trace category")
	}
	debug.Clear(toUpper(name))
	return false, nil
}

func traceComplete(_ *cmdLine, _ *Console) []string {
	return debug.Names()
}

func toUpper(s string) string {
	out := make([]byte, len(s))
	for i := range s {
		by := s[i]
		if by >= 'a' && by <= 'z' {
			by -= 'a' - 'A'
		}
		out[i] = by
	}
	return string(out)
}

func quit(_ *cmdLine, _ *Console) (bool, error) {
	return true, nil
}
