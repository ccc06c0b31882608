package core

// execCoprocDataOp implements CDP: HandleCoProcDO in arm7core.c. A CP#
// with no bound Coprocessor raises an undefined-instruction exception
// rather than silently doing nothing, the way a real core traps an
// unimplemented coprocessor.
func (c *Core) execCoprocDataOp(insn uint32) {
	cpNum := (insn >> 8) & 0xf
	c.Logger.Debug("coprocessor dispatch", "op", "CDP", "cp", cpNum)
	cop := c.Coproc[cpNum]
	if cop == nil {
		c.raiseUndefined()
		return
	}
	cop.DataOp(insn)
}

// execCoprocRegTransfer implements MRC/MCR: HandleCoProcRT.
func (c *Core) execCoprocRegTransfer(insn uint32) {
	cpNum := (insn >> 8) & 0xf
	c.Logger.Debug("coprocessor dispatch", "op", "MRC/MCR", "cp", cpNum)
	cop := c.Coproc[cpNum]
	if cop == nil {
		c.raiseUndefined()
		return
	}

	toARM := insn&(1<<20) != 0
	rd := (insn >> 12) & 0xf

	if toARM {
		v := cop.RegFromCP(insn)
		if rd == 15 {
			c.SetFlags(v) // MRC to r15 transfers the result into the flag bits only
		} else {
			c.SetR(rd, v)
		}
		return
	}

	var v uint32
	if rd == 15 {
		v = c.PC() + 8
	} else {
		v = c.R(rd)
	}
	cop.RegToCP(insn, v)
}

// execCoprocDataTransfer implements LDC/STC: HandleCoProcDT.
func (c *Core) execCoprocDataTransfer(insn uint32) {
	cpNum := (insn >> 8) & 0xf
	c.Logger.Debug("coprocessor dispatch", "op", "LDC/STC", "cp", cpNum)
	cop := c.Coproc[cpNum]
	if cop == nil {
		c.raiseUndefined()
		return
	}

	preIndex := insn&(1<<24) != 0
	up := insn&(1<<23) != 0
	writeback := insn&(1<<21) != 0
	load := insn&(1<<20) != 0
	rn := (insn >> 16) & 0xf
	offset := (insn & 0xff) << 2

	base := c.R(rn)
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

	rnValue := effAddr
	if load {
		cop.DataRead(insn, &rnValue, c.Bus.Read32)
	} else {
		cop.DataWrite(insn, &rnValue, c.Bus.Write32)
	}

	if preIndex && writeback {
		c.SetR(rn, rnValue)
	} else if !preIndex {
		var newBase uint32
		if up {
			newBase = base + offset
		} else {
			newBase = base - offset
		}
		c.SetR(rn, newBase)
	}
}
