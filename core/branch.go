package core

// execBranch implements B/BL: HandleBranch in arm7core.c. The 24-bit
// signed offset is word-aligned (<<2) and added to PC+8 (the pipelined
// read-ahead value); BL additionally saves the return address (PC+4, i.e.
// the address of the instruction after the branch) into r14.
func (c *Core) execBranch(insn uint32) {
	link := insn&(1<<24) != 0

	offset := insn & 0x00ff_ffff
	if offset&0x0080_0000 != 0 {
		offset |= 0xff00_0000 // sign-extend 24 bits
	}
	offset <<= 2

	pc := c.PC() // already advanced past the branch instruction by Step
	if link {
		c.SetR(14, pc)
	}
	target := (pc + 4) + offset // pc here is already +4; add the remaining +4 to reach PC+8 base
	c.SetPC(target)
}

// execBranchExchange implements BX: branch to the address in Rm, switching
// to Thumb state if bit 0 is set. This core only decodes ARM state
// instructions (see the Thumb non-goal), so a Thumb-bit target is taken as
// a plain branch with only the low bit masked off.
func (c *Core) execBranchExchange(insn uint32) {
	rm := insn & 0xf
	target := c.R(rm)
	c.SetPC(target &^ 1)
}
