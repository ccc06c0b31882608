package core

// R reads logical register n (0-15) as seen by the current mode. r15 reads
// back the raw PC; callers needing the +8/+12 pipelining adjustment apply it
// themselves, since the adjustment differs between ALU source reads and
// branch targets.
func (c *Core) R(n uint32) uint32 {
	return c.regs[c.physIndex(n)]
}

// SetR writes logical register n as seen by the current mode.
func (c *Core) SetR(n uint32, v uint32) {
	c.regs[c.physIndex(n)] = v
}

// RBanked reads logical register n as seen by an explicit mode, regardless
// of the current mode; used by the LDM/STM S-bit user-bank transfer.
func (c *Core) RBanked(mode Mode, n uint32) uint32 {
	return c.regs[physIndexFor(mode, n)]
}

// SetRBanked writes logical register n as seen by an explicit mode.
func (c *Core) SetRBanked(mode Mode, n uint32, v uint32) {
	c.regs[physIndexFor(mode, n)] = v
}

// physIndex resolves logical register n under the current CPSR mode.
func (c *Core) physIndex(n uint32) int {
	return physIndexFor(c.Mode(), n)
}

// physIndexFor resolves logical register n under an explicit mode.
// r0-r7 and r15 are never banked. r8-r12 are banked only in FIQ mode.
// r13-r14 are banked in every privileged mode.
func physIndexFor(mode Mode, n uint32) int {
	switch {
	case n == 15:
		return physPC
	case n <= 7:
		return physCommonBase + int(n)
	case n <= 12:
		if mode == ModeFIQ {
			return physFIQBase + int(n-8)
		}
		return physCommonBase + int(n)
	default: // r13, r14
		bank := bankIndex(mode)
		return physBankBase + 2*bank + int(n-13)
	}
}

// PC returns the raw program counter (r15), with no pipelining adjustment.
func (c *Core) PC() uint32 { return c.regs[physPC] }

// SetPC writes the raw program counter.
func (c *Core) SetPC(v uint32) { c.regs[physPC] = v }

// CPSR returns the current program status register.
func (c *Core) CPSR() uint32 { return c.cpsr }

// SetCPSR overwrites the entire CPSR, including the mode field. Like
// SwitchMode it copies no register content: the banked registers visible
// afterwards follow from the new mode field alone.
func (c *Core) SetCPSR(v uint32) { c.cpsr = v }

// Mode returns the processor mode encoded in the CPSR's low 5 bits.
func (c *Core) Mode() Mode { return Mode(c.cpsr & modeMask) }

// Flags returns the N/Z/C/V bits of the CPSR, for condition evaluation.
func (c *Core) Flags() uint32 { return c.cpsr & (flagN | flagZ | flagC | flagV) }

// SetFlags replaces the N/Z/C/V bits of the CPSR, leaving control bits
// untouched.
func (c *Core) SetFlags(f uint32) {
	c.cpsr = (c.cpsr &^ (flagN | flagZ | flagC | flagV)) | (f & (flagN | flagZ | flagC | flagV))
}

// SPSR returns the saved program status register banked for the current
// mode. Reading SPSR in USR or SYS mode is architecturally undefined; this
// returns the CPSR's own value (mirrors MAME's arm7core.c GetRegister
// fallback) since there is no banked SPSR slot for those modes.
func (c *Core) SPSR() uint32 {
	b := bankIndex(c.Mode())
	if b == bankUSR {
		return c.cpsr
	}
	return c.spsr[b]
}

// SetSPSR writes the SPSR banked for the current mode. A write while in
// USR or SYS mode is a no-op: those modes have no banked SPSR (invariant 5).
func (c *Core) SetSPSR(v uint32) {
	b := bankIndex(c.Mode())
	if b == bankUSR {
		return
	}
	c.spsr[b] = v
}

// SwitchMode rewrites only the mode bits of CPSR, the way arm7core.c's
// SwitchMode does: the physical register banking takes care of exposing the
// right r13/r14 (and r8-r12 for FIQ) once the mode field changes, so no
// register content is copied here.
func (c *Core) SwitchMode(mode Mode) {
	if old := c.Mode(); old != mode {
		c.Logger.Debug("mode switch", "from", old, "to", mode)
	}
	c.cpsr = (c.cpsr &^ modeMask) | uint32(mode)
}
