package core

import "sync/atomic"

// SetIRQLine raises the IRQ line; safe to call from a goroutine other than
// the one driving Step (arm7_core_set_irq_line's pendingIrq case).
func (c *Core) SetIRQLine(active bool) { c.setPending(pendIRQ, active) }

// SetFIQLine raises the FIQ line.
func (c *Core) SetFIQLine(active bool) { c.setPending(pendFIQ, active) }

// SetResetLine raises the reset line; serviced with top priority on the
// next Step.
func (c *Core) SetResetLine(active bool) { c.setPending(pendReset, active) }

// SignalPrefetchAbort raises a pending prefetch abort.
func (c *Core) SignalPrefetchAbort() { c.setPending(pendPrefetchAbort, true) }

// SignalDataAbort raises a pending data abort; core.Core implements
// memory.Faulter through this method so a Bus can report an out-of-range
// access without returning an error value from its accessors.
func (c *Core) SignalDataAbort() { c.setPending(pendDataAbort, true) }

func (c *Core) setPending(bit uint32, active bool) {
	for {
		old := atomic.LoadUint32(&c.pending)
		var next uint32
		if active {
			next = old | bit
		} else {
			next = old &^ bit
		}
		if atomic.CompareAndSwapUint32(&c.pending, old, next) {
			return
		}
	}
}

func (c *Core) testPending(bit uint32) bool {
	return atomic.LoadUint32(&c.pending)&bit != 0
}

func (c *Core) clearPending(bit uint32) { c.setPending(bit, false) }

// raiseUndefined and raiseSWI are software-triggered (decoded, not
// line-driven) exceptions; they go straight to vector entry since they are
// not subject to the same priority race as the line-driven exceptions.
func (c *Core) raiseUndefined() {
	c.enterException(ModeUND, vecUndefined, c.PC(), bitI)
}

func (c *Core) raiseSWI() {
	c.enterException(ModeSVC, vecSWI, c.PC(), bitI)
}

// serviceExceptions checks pending lines in §4.13 priority order (Reset >
// Data Abort > FIQ > IRQ > Prefetch Abort), entering at most one exception
// per Step call, the way arm7_check_irq_state does. It reports whether an
// exception was taken (in which case Step does not also fetch/execute).
func (c *Core) serviceExceptions() bool {
	switch {
	case c.testPending(pendReset):
		c.clearPending(pendReset)
		c.Reset()
		return true

	case c.testPending(pendDataAbort):
		c.clearPending(pendDataAbort)
		c.enterException(ModeABT, vecDataAbrt, c.PC()+4, bitI)
		return true

	case c.testPending(pendFIQ) && c.cpsr&bitF == 0:
		c.enterException(ModeFIQ, vecFIQ, c.PC()+4, bitI|bitF)
		return true

	case c.testPending(pendIRQ) && c.cpsr&bitI == 0:
		c.enterException(ModeIRQ, vecIRQ, c.PC()+4, bitI)
		return true

	case c.testPending(pendPrefetchAbort):
		c.clearPending(pendPrefetchAbort)
		c.enterException(ModeABT, vecPrefetchAbrt, c.PC()+4, bitI)
		return true
	}
	return false
}

// enterException performs the common exception-entry sequence: save
// SPSR_<mode> = CPSR, save r14_<mode> = linkValue, switch mode, set
// I (and F, for FIQ only) in CPSR, clear T, and load PC from the vector
// (optionally relocated to the high vector page).
func (c *Core) enterException(mode Mode, vector uint32, linkValue uint32, maskBits uint32) {
	c.Logger.Debug("exception entry", "mode", mode, "vector", vector, "link", linkValue)
	oldCPSR := c.cpsr
	c.SwitchMode(mode)
	c.SetSPSR(oldCPSR)
	c.SetR(14, linkValue)
	c.cpsr |= maskBits
	c.cpsr &^= bitT

	base := vector
	if c.highVectorsEnabled() {
		base = highVectorBase | vector
	}
	c.SetPC(base)
}

// highVectorsEnabled queries the system control coprocessor (conventionally
// bound at CP15) for its high-vectors bit, per spec.md's "MMU-control bit
// exposed through the coprocessor state"; Core.HighVectors is the fallback
// for hosts that don't model a CP15 at all.
func (c *Core) highVectorsEnabled() bool {
	if cp15 := c.Coproc[15]; cp15 != nil {
		return cp15.ControlHighVectors()
	}
	return c.HighVectors
}
