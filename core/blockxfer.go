package core

import "math/bits"

// execBlockDataTransfer implements LDM/STM: HandleMemBlock in
// arm7core.c. Handles the four addressing modes (pre/post x up/down), the
// S-bit user-bank transfer, the base-in-register-list rule (an LDM that
// loads Rb suppresses writeback, since the loaded value takes precedence;
// an STM still writes back), and R15-in-list CPSR restore for LDM with S
// set.
func (c *Core) execBlockDataTransfer(insn uint32) {
	preIndex := insn&(1<<24) != 0
	up := insn&(1<<23) != 0
	sBit := insn&(1<<22) != 0
	writeback := insn&(1<<21) != 0
	load := insn&(1<<20) != 0
	rn := (insn >> 16) & 0xf
	regList := insn & 0xffff

	count := bits.OnesCount32(regList)
	base := c.R(rn)

	var start uint32
	if up {
		start = base
		if preIndex {
			start += 4
		}
	} else {
		start = base - uint32(count)*4
		if !preIndex {
			start += 4
		}
	}

	userBank := sBit && (!load || regList&(1<<15) == 0)

	addr := start
	aborted := false
	for r := uint32(0); r < 16; r++ {
		if regList&(1<<r) == 0 {
			continue
		}
		if load {
			v := c.readWordRotated(addr)
			if c.testPending(pendDataAbort) {
				aborted = true
				break
			}
			if userBank {
				c.SetRBanked(ModeUSR, r, v)
			} else if r == 15 {
				c.SetPC(v)
			} else {
				c.SetR(r, v)
			}
		} else {
			var v uint32
			if userBank {
				v = c.RBanked(ModeUSR, r)
			} else {
				v = c.R(r)
				if r == 15 {
					v += 8 // R15 is already current+4; stored PC is current+12
				}
			}
			c.Bus.Write32(addr, v)
			if c.testPending(pendDataAbort) {
				aborted = true
				break
			}
		}
		addr += 4
	}

	// A data abort partway through the transfer stops any further registers
	// from being overwritten and suppresses writeback entirely, per
	// arm7core.c's pendingAbtD handling in HandleMemBlock.
	if aborted {
		return
	}

	if load && sBit && regList&(1<<15) != 0 {
		c.cpsr = c.SPSR()
	}

	// A load into the base register is always the final value of the base:
	// writeback would only be overwritten by it, so it is skipped outright.
	// A store still writes back even when the base is in the list.
	if writeback && !(load && regList&(1<<rn) != 0) {
		var newBase uint32
		if up {
			newBase = base + uint32(count)*4
		} else {
			newBase = base - uint32(count)*4
		}
		c.SetR(rn, newBase)
	}
}
