package core

// execSwap implements SWP/SWPB: HandleSwap in arm7core.c. The read and
// write are treated as a single indivisible bus transaction from the
// interpreter's point of view (no other goroutine observes memory between
// them since Step is non-reentrant).
func (c *Core) execSwap(insn uint32) {
	byteSwap := insn&(1<<22) != 0
	rn := (insn >> 16) & 0xf
	rd := (insn >> 12) & 0xf
	rm := insn & 0xf

	addr := c.R(rn)
	src := c.R(rm)

	if byteSwap {
		old := c.Bus.Read8(addr)
		c.Bus.Write8(addr, uint8(src))
		c.SetR(rd, uint32(old))
		return
	}

	old := c.readWordRotated(addr)
	c.Bus.Write32(addr, src)
	c.SetR(rd, old)
}
