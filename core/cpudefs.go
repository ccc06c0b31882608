/*
   ARM7TDMI CPU definitions

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

// Package core implements a portable ARM7TDMI (ARMv4T) fetch-decode-execute
// engine: banked register file, CPSR/SPSR, barrel shifter, and the handler
// families for data processing, load/store, block transfer, multiply,
// branch, PSR transfer, coprocessor dispatch and exception prioritization.
package core

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/rcornwell/arm7tdmi/coproc"
	"github.com/rcornwell/arm7tdmi/memory"
)

// discardLogger is the nil-safe default for Core.Logger: callers that never
// set a logger get every Debug call silently swallowed instead of a nil
// pointer dereference.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Processor mode, stored in the low 5 bits of CPSR.
type Mode uint32

const (
	ModeUSR Mode = 0x10
	ModeFIQ Mode = 0x11
	ModeIRQ Mode = 0x12
	ModeSVC Mode = 0x13
	ModeABT Mode = 0x17
	ModeUND Mode = 0x1b
	ModeSYS Mode = 0x1f
)

// CPSR/SPSR bit layout.
const (
	flagN uint32 = 1 << 31
	flagZ uint32 = 1 << 30
	flagC uint32 = 1 << 29
	flagV uint32 = 1 << 28

	bitI uint32 = 1 << 7 // IRQ disable
	bitF uint32 = 1 << 6 // FIQ disable
	bitT uint32 = 1 << 5 // Thumb (unimplemented: ARMv4T core always decodes ARM)

	modeMask uint32 = 0x1f
)

// Register bank index (into the 31-entry physical GPR file; the five SPSRs
// and the CPSR are held separately, giving the architectural 37 physical
// registers).
const (
	bankUSR = iota
	bankFIQ
	bankSVC
	bankABT
	bankIRQ
	bankUND
	numBanks
)

// Physical register layout: r0-r7 and r15 are shared by every mode; r8-r12
// are banked only for FIQ; r13-r14 are banked per privileged mode (including
// a USR/SYS-shared pair).
const (
	physCommonBase = 0                         // r0..r12, shared slots
	physCommonLen  = 13                        // r0..r12
	physPC         = physCommonLen             // r15, shared slot just after r0..r12
	physBankBase   = physCommonLen + 1         // start of the six banked r13/r14 pairs
	physFIQBase    = physBankBase + 2*numBanks // start of the five FIQ-only r8..r12
	numPhysRegs    = physFIQBase + 5
)

// bankIndex maps a CPSR mode field to its register bank.
func bankIndex(mode Mode) int {
	switch mode {
	case ModeFIQ:
		return bankFIQ
	case ModeSVC:
		return bankSVC
	case ModeABT:
		return bankABT
	case ModeIRQ:
		return bankIRQ
	case ModeUND:
		return bankUND
	default:
		return bankUSR
	}
}

// Pending-exception line bits, stored in Core.pending and manipulated with
// atomic ops so SetXXXLine can be called from a goroutine other than the one
// driving Step.
const (
	pendReset uint32 = 1 << iota
	pendDataAbort
	pendFIQ
	pendIRQ
	pendPrefetchAbort
	pendUndefined
	pendSWI
)

// Exception vectors (low-vector layout; relocated to 0xffff0000-relative
// when HighVectors is set).
const (
	vecReset        uint32 = 0x00
	vecUndefined    uint32 = 0x04
	vecSWI          uint32 = 0x08
	vecPrefetchAbrt uint32 = 0x0c
	vecDataAbrt     uint32 = 0x10
	vecIRQ          uint32 = 0x18
	vecFIQ          uint32 = 0x1c

	highVectorBase uint32 = 0xffff0000
)

// condTable[cond] reports whether a condition field is satisfied given the
// current N/Z/C/V flags; built once, mirroring the dispatch-table idiom of
// table-driven opcode decoding.
var condTable [16]func(flags uint32) bool

func init() {
	n := func(f uint32) bool { return f&flagN != 0 }
	z := func(f uint32) bool { return f&flagZ != 0 }
	c := func(f uint32) bool { return f&flagC != 0 }
	v := func(f uint32) bool { return f&flagV != 0 }

	condTable = [16]func(uint32) bool{
		0x0: func(f uint32) bool { return z(f) },                                 // EQ
		0x1: func(f uint32) bool { return !z(f) },                                // NE
		0x2: func(f uint32) bool { return c(f) },                                 // CS/HS
		0x3: func(f uint32) bool { return !c(f) },                                // CC/LO
		0x4: func(f uint32) bool { return n(f) },                                 // MI
		0x5: func(f uint32) bool { return !n(f) },                                // PL
		0x6: func(f uint32) bool { return v(f) },                                 // VS
		0x7: func(f uint32) bool { return !v(f) },                                // VC
		0x8: func(f uint32) bool { return c(f) && !z(f) },                        // HI
		0x9: func(f uint32) bool { return !c(f) || z(f) },                        // LS
		0xa: func(f uint32) bool { return n(f) == v(f) },                         // GE
		0xb: func(f uint32) bool { return n(f) != v(f) },                         // LT
		0xc: func(f uint32) bool { return !z(f) && n(f) == v(f) },                // GT
		0xd: func(f uint32) bool { return z(f) || n(f) != v(f) },                 // LE
		0xe: func(f uint32) bool { return true },                                 // AL
		0xf: func(f uint32) bool { return true },                                 // reserved (NV, treated as AL)
	}
}

// Core is a single ARM7TDMI execution context. It owns no global state: a
// program that needs several cores simply constructs several Cores.
type Core struct {
	regs  [numPhysRegs]uint32 // physical register file
	cpsr  uint32
	spsr  [numBanks]uint32 // SPSR_fiq, _svc, _abt, _irq, _und (index by bank; bankUSR unused)

	Bus    memory.Bus
	Coproc [16]coproc.Coprocessor // coprocessor number -> bound Coprocessor, nil if unbound

	Budget int64 // remaining instruction count for Step's caller-driven outer loop

	HighVectors bool // relocate exception vectors to 0xffff0000, fallback when no CP15 is bound

	// Logger receives Debug-level records for mode switches, exception
	// entry, and coprocessor dispatch; nil-safe, defaulting to a discard
	// logger so a host that doesn't care about this never has to check it.
	Logger *slog.Logger

	pending uint32 // atomic bitset of pendXXX flags
}

// NewCore returns a Core reset to the architectural power-on state.
func NewCore(bus memory.Bus) *Core {
	c := &Core{Bus: bus, Logger: discardLogger}
	c.Reset()
	return c
}

// Reset puts the Core into the state arm7_core_reset establishes: IRQ and
// FIQ masked, SVC mode, PC at the reset vector.
func (c *Core) Reset() {
	if c.Logger == nil {
		c.Logger = discardLogger
	}
	c.cpsr = bitI | bitF | uint32(ModeSVC)
	for i := range c.regs {
		c.regs[i] = 0
	}
	for i := range c.spsr {
		c.spsr[i] = 0
	}
	atomic.StoreUint32(&c.pending, 0)
	c.SetPC(vecReset)
}
