package core

// readWordRotated performs an unaligned-tolerant word read: the ARM7TDMI
// bus only ever returns the aligned word containing addr, and the core
// rotates it right by 8*(addr&3) to bring the addressed byte into bits
// 0-7, matching HandleMemSingle's unaligned LDR behavior.
func (c *Core) readWordRotated(addr uint32) uint32 {
	aligned := addr &^ 3
	v := c.Bus.Read32(aligned)
	rot := (addr & 3) * 8
	if rot == 0 {
		return v
	}
	return (v >> rot) | (v << (32 - rot))
}

// execSingleDataTransfer implements LDR/STR (word and byte): HandleMemSingle
// in arm7core.c. Handles immediate/register offsets, pre/post-indexing,
// up/down, writeback, the PC-as-base +8 correction, and the PC-as-Rd/Rn
// special cases.
func (c *Core) execSingleDataTransfer(insn uint32) {
	immediate := insn&(1<<25) == 0
	preIndex := insn&(1<<24) != 0
	up := insn&(1<<23) != 0
	byteXfer := insn&(1<<22) != 0
	writeback := insn&(1<<21) != 0
	load := insn&(1<<20) != 0
	rn := (insn >> 16) & 0xf
	rd := (insn >> 12) & 0xf

	var offset uint32
	if immediate {
		offset = insn & 0xfff
	} else {
		kind := shiftType((insn >> 5) & 0x3)
		amount := (insn >> 7) & 0x1f
		rm := insn & 0xf
		offset, _ = barrelShift(kind, c.R(rm), amount, false, c.cpsr&flagC != 0)
	}

	base := c.R(rn)
	if rn == 15 {
		base += 4 // R15 is already current+4; base reads are current+8
	}

	var effAddr uint32
	if preIndex {
		if up {
			effAddr = base + offset
		} else {
			effAddr = base - offset
		}
	} else {
		effAddr = base
	}

	if load {
		var value uint32
		if byteXfer {
			value = uint32(c.Bus.Read8(effAddr))
		} else {
			value = c.readWordRotated(effAddr)
		}

		if c.testPending(pendDataAbort) {
			return // Rd and the base are left exactly as they were before the access
		}

		if rd == 15 {
			c.SetPC(value &^ 3)
		} else {
			c.SetR(rd, value)
		}
	} else {
		value := c.R(rd)
		if rd == 15 {
			value += 8 // R15 is already current+4; stored PC is current+12
		}
		if byteXfer {
			c.Bus.Write8(effAddr, uint8(value))
		} else {
			c.Bus.Write32(effAddr, value)
		}

		if c.testPending(pendDataAbort) {
			return
		}
	}

	// Post-indexed addressing always writes back; pre-indexed writes back
	// only when W is set. A load into the base register suppresses
	// writeback (the loaded value wins), matching arm7core.c's rd==rn rule.
	if load && rd == rn {
		return
	}

	if !preIndex {
		var newBase uint32
		if up {
			newBase = base + offset
		} else {
			newBase = base - offset
		}
		c.SetR(rn, newBase)
	} else if writeback {
		c.SetR(rn, effAddr)
	}
}

// execHalfwordDataTransfer implements LDRH/STRH/LDRSB/LDRSH and the
// LDRD/STRD extension: HandleHalfWordDT in arm7core.c. The L bit is
// overloaded by the SH field: L=1 always loads (SH selects
// halfword/signed-byte/signed-halfword), while L=0 with SH=10 is LDRD and
// SH=11 is STRD (SH=01 with L=0 is the plain STRH). Addressing
// (immediate vs register offset, pre/post-index, up/down, writeback)
// mirrors execSingleDataTransfer.
func (c *Core) execHalfwordDataTransfer(insn uint32) {
	preIndex := insn&(1<<24) != 0
	up := insn&(1<<23) != 0
	immediate := insn&(1<<22) != 0
	writeback := insn&(1<<21) != 0
	load := insn&(1<<20) != 0
	rn := (insn >> 16) & 0xf
	rd := (insn >> 12) & 0xf

	var offset uint32
	if immediate {
		offset = ((insn >> 4) & 0xf0) | (insn & 0xf)
	} else {
		offset = c.R(insn & 0xf)
	}

	base := c.R(rn)
	if rn == 15 {
		base += 4 // R15 is already current+4; base reads are current+8
	}

	var effAddr uint32
	if preIndex {
		if up {
			effAddr = base + offset
		} else {
			effAddr = base - offset
		}
	} else {
		effAddr = base
	}

	sh := (insn >> 5) & 0x3

	switch {
	case load && sh == 0x1: // LDRH
		v := uint32(c.Bus.Read16(effAddr))
		if c.testPending(pendDataAbort) {
			return
		}
		c.storeLoadResult(rd, v)
	case load && sh == 0x2: // LDRSB
		v := int32(int8(c.Bus.Read8(effAddr)))
		if c.testPending(pendDataAbort) {
			return
		}
		c.storeLoadResult(rd, uint32(v))
	case load && sh == 0x3: // LDRSH
		v := int32(int16(c.Bus.Read16(effAddr)))
		if c.testPending(pendDataAbort) {
			return
		}
		c.storeLoadResult(rd, uint32(v))
	case !load && sh == 0x1: // STRH
		c.Bus.Write16(effAddr, uint16(c.R(rd)))
		if c.testPending(pendDataAbort) {
			return
		}
	case !load && sh == 0x2: // LDRD
		lo := c.readWordRotated(effAddr)
		if c.testPending(pendDataAbort) {
			return
		}
		c.storeLoadResult(rd, lo)
		hi := c.readWordRotated(effAddr + 4)
		if c.testPending(pendDataAbort) {
			return
		}
		c.storeLoadResult(rd+1, hi)
	case !load && sh == 0x3: // STRD
		c.Bus.Write32(effAddr, c.R(rd))
		if c.testPending(pendDataAbort) {
			return
		}
		c.Bus.Write32(effAddr+4, c.R(rd+1))
		if c.testPending(pendDataAbort) {
			return
		}
	}

	isLoadish := load || sh == 0x2 // LDRD loads despite L==0
	if isLoadish && rd == rn {
		return
	}

	if !preIndex {
		var newBase uint32
		if up {
			newBase = base + offset
		} else {
			newBase = base - offset
		}
		c.SetR(rn, newBase)
	} else if writeback {
		c.SetR(rn, effAddr)
	}
}

func (c *Core) storeLoadResult(rd uint32, v uint32) {
	if rd == 15 {
		c.SetPC(v &^ 3)
		return
	}
	c.SetR(rd, v)
}
