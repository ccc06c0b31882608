package core

import (
	"github.com/rcornwell/arm7tdmi/internal/debug"
)

// instClass identifies which handler family a fetched word belongs to,
// decoded from the fixed bit pattern in bits 27-4 the way a real ARM7TDMI
// decoder would; Step dispatches on it with a switch keyed on instruction
// shape, since the ARM encoding does not expose a single byte-wide opcode
// field.
type instClass int

const (
	classUndefined instClass = iota
	classBranch
	classBranchExchange
	classDataProcessing
	classPSRTransfer
	classMultiply
	classMultiplyLong
	classSingleSwap
	classSingleDataTransfer
	classHalfwordDataTransfer
	classBlockDataTransfer
	classCoprocDataOp
	classCoprocRegTransfer
	classCoprocDataTransfer
	classSoftwareInterrupt
)

// classify decodes the instruction class from bits 27-4, following the
// same bit-pattern precedence MAME's arm7 execute loop uses.
func classify(insn uint32) instClass {
	switch {
	case insn&0x0fff_fff0 == 0x012f_ff10: // BX
		return classBranchExchange
	case insn&0x0e00_0000 == 0x0a00_0000: // B, BL
		return classBranch
	case insn&0x0fb0_0ff0 == 0x0100_0090: // SWP/SWPB
		return classSingleSwap
	case insn&0x0fc0_00f0 == 0x0000_0090: // MUL/MLA
		return classMultiply
	case insn&0x0f80_00f0 == 0x0080_0090: // UMULL/UMLAL/SMULL/SMLAL
		return classMultiplyLong
	case insn&0x0e00_0090 == 0x0000_0090 && insn&0x60 != 0: // halfword/signed xfer
		return classHalfwordDataTransfer
	case insn&0x0fbf_0fff == 0x010f_0000, insn&0x0fbf_fff0 == 0x0129_f000: // MRS, MSR register form
		return classPSRTransfer
	case insn&0x0db0_f000 == 0x0120_f000: // MSR
		return classPSRTransfer
	case insn&0x0c00_0000 == 0x0000_0000:
		return classDataProcessing
	case insn&0x0e00_0010 == 0x0600_0010: // register-offset LDR/STR with bit4 set: reserved/undefined
		return classUndefined
	case insn&0x0c00_0000 == 0x0400_0000:
		return classSingleDataTransfer
	case insn&0x0e00_0000 == 0x0800_0000:
		return classBlockDataTransfer
	case insn&0x0f00_0000 == 0x0f00_0000:
		return classSoftwareInterrupt
	case insn&0x0f00_0010 == 0x0e00_0000:
		return classCoprocDataOp
	case insn&0x0f00_0010 == 0x0e00_0010:
		return classCoprocRegTransfer
	case insn&0x0e00_0000 == 0x0c00_0000:
		return classCoprocDataTransfer
	default:
		return classUndefined
	}
}

// FatalError reports a host-fatal condition Step cannot recover from on its
// own, e.g. an attempt to run in 26-bit compatibility mode. It is never
// panicked; Step returns it like any other error so a driving loop (the
// debug console, main.go) can report a diagnostic and stop.
type FatalError struct{ Reason string }

func (e *FatalError) Error() string { return e.Reason }

// bit4 of the mode field distinguishes 32-bit modes (set, this core's only
// defined Mode constants) from the legacy 26-bit modes (clear: User26,
// FIQ26, IRQ26, SVC26). Unreachable via any path this core takes after
// Reset, but representable if a guest loads one into CPSR via MSR or a
// PC-restoring data-processing write.
func modeIs26Bit(cpsr uint32) bool {
	return cpsr&0x10 == 0
}

// Step executes exactly one instruction: it services any pending exception
// (higher priority wins per the §4.13 order), else fetches, checks the
// condition field, and dispatches. The caller's outer loop drives Budget.
func (c *Core) Step() error {
	if modeIs26Bit(c.cpsr) {
		return &FatalError{Reason: "26-bit compatibility mode is not implemented"}
	}

	if c.serviceExceptions() {
		c.Budget--
		return nil
	}

	pc := c.PC()
	insn := c.Bus.Read32(pc)
	c.SetPC(pc + 4)

	debug.Tracef(debug.Inst, "pc=%08x insn=%08x", pc, insn)

	cond := insn >> 28
	if !c.checkCond(cond) {
		c.Budget--
		return nil
	}

	switch classify(insn) {
	case classBranch:
		c.execBranch(insn)
	case classBranchExchange:
		c.execBranchExchange(insn)
	case classDataProcessing:
		c.execDataProcessing(insn)
	case classPSRTransfer:
		c.execPSRTransfer(insn)
	case classMultiply:
		c.execMultiply(insn)
	case classMultiplyLong:
		c.execMultiplyLong(insn)
	case classSingleSwap:
		c.execSwap(insn)
	case classSingleDataTransfer:
		c.execSingleDataTransfer(insn)
	case classHalfwordDataTransfer:
		c.execHalfwordDataTransfer(insn)
	case classBlockDataTransfer:
		c.execBlockDataTransfer(insn)
	case classCoprocDataOp:
		c.execCoprocDataOp(insn)
	case classCoprocRegTransfer:
		c.execCoprocRegTransfer(insn)
	case classCoprocDataTransfer:
		c.execCoprocDataTransfer(insn)
	case classSoftwareInterrupt:
		c.raiseSWI()
	default:
		c.raiseUndefined()
	}

	c.Budget--
	return nil
}
