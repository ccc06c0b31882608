package core

// execMultiply implements MUL/MLA: HandleMul in arm7core.c. Only N/Z are
// updated when S is set; C and V are left unpredictable-but-unchanged by
// this implementation, and Rd must not equal Rm (UNPREDICTABLE, not
// checked here).
func (c *Core) execMultiply(insn uint32) {
	accumulate := insn&(1<<21) != 0
	sBit := insn&(1<<20) != 0
	rd := (insn >> 16) & 0xf
	rn := (insn >> 12) & 0xf
	rs := (insn >> 8) & 0xf
	rm := insn & 0xf

	result := c.R(rm) * c.R(rs)
	if accumulate {
		result += c.R(rn)
	}
	c.SetR(rd, result)

	if sBit {
		c.SetFlags(nzFlags(result, c.cpsr))
	}
}

// execMultiplyLong implements UMULL/UMLAL/SMULL/SMLAL: HandleUMulLong and
// HandleSMulLong. Bit 22 selects signed vs unsigned, bit 21 selects
// accumulate.
func (c *Core) execMultiplyLong(insn uint32) {
	signed := insn&(1<<22) != 0
	accumulate := insn&(1<<21) != 0
	sBit := insn&(1<<20) != 0
	rdHi := (insn >> 16) & 0xf
	rdLo := (insn >> 12) & 0xf
	rs := (insn >> 8) & 0xf
	rm := insn & 0xf

	var result uint64
	if signed {
		result = uint64(int64(int32(c.R(rm))) * int64(int32(c.R(rs))))
	} else {
		result = uint64(c.R(rm)) * uint64(c.R(rs))
	}

	if accumulate {
		acc := uint64(c.R(rdHi))<<32 | uint64(c.R(rdLo))
		result += acc
	}

	c.SetR(rdLo, uint32(result))
	c.SetR(rdHi, uint32(result>>32))

	if sBit {
		c.SetFlags(nzFlags64(result, c.cpsr))
	}
}
