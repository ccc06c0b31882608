package core

// checkCond evaluates the 4-bit condition field against the current flags;
// grounds the per-instruction "cond field" gate every handler is entered
// through.
func (c *Core) checkCond(cond uint32) bool {
	return condTable[cond&0xf](c.cpsr)
}

// addFlags computes N/Z/C/V for a plain addition a+b producing result, the
// way HandleALUAddFlags derives them in arm7core.c. ADC uses
// addFlagsCarry instead, since folding its carry-in into b would wrap
// when b is 0xffffffff.
func addFlags(a, b, result uint32) uint32 {
	var f uint32
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	if uint64(a)+uint64(b) > 0xffff_ffff {
		f |= flagC
	}
	if (a^result)&(b^result)&0x8000_0000 != 0 {
		f |= flagV
	}
	return f
}

// subFlags computes N/Z/C/V for a subtraction a-b producing result; carry
// set means no borrow occurred, matching ARM's subtract-carry convention.
func subFlags(a, b, result uint32) uint32 {
	var f uint32
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	if a >= b {
		f |= flagC
	}
	if (a^b)&(a^result)&0x8000_0000 != 0 {
		f |= flagV
	}
	return f
}

// addFlagsCarry is addFlags for the ADC-style a+b+carryIn chain: C/V must be
// derived from the true 33-bit sum rather than a pre-folded operand, since
// folding carryIn into b wraps when b is 0xffffffff and carryIn is 1.
func addFlagsCarry(a, b, carryIn, result uint32) uint32 {
	var f uint32
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	if uint64(a)+uint64(b)+uint64(carryIn) > 0xffff_ffff {
		f |= flagC
	}
	if (a^result)&(b^result)&0x8000_0000 != 0 {
		f |= flagV
	}
	return f
}

// subFlagsBorrow is subFlags for the SBC/RSC-style a-b-borrowIn chain, the
// subtraction analogue of addFlagsCarry.
func subFlagsBorrow(a, b, borrowIn, result uint32) uint32 {
	var f uint32
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	if int64(a)-int64(b)-int64(borrowIn) >= 0 {
		f |= flagC
	}
	if (a^b)&(a^result)&0x8000_0000 != 0 {
		f |= flagV
	}
	return f
}

// logicalFlags computes N/Z for a logical result, leaving C as supplied by
// the barrel shifter's carry-out and V untouched (HandleALULogicalFlags).
func logicalFlags(result uint32, carry bool, oldV uint32) uint32 {
	var f uint32
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	if carry {
		f |= flagC
	}
	return f | (oldV & flagV)
}

// nzFlags computes just N/Z (for MUL/MLA and the 64-bit multiply family),
// leaving C and V as they were, matching HandleALUNZFlags /
// HandleLongALUNZFlags which do not touch C or V.
func nzFlags(result uint32, old uint32) uint32 {
	f := old &^ (flagN | flagZ)
	if result&0x8000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	return f
}

// nzFlags64 is nzFlags for the 64-bit multiply result (N from bit 63, Z
// from the whole 64 bits being zero).
func nzFlags64(result uint64, old uint32) uint32 {
	f := old &^ (flagN | flagZ)
	if result&0x8000_0000_0000_0000 != 0 {
		f |= flagN
	}
	if result == 0 {
		f |= flagZ
	}
	return f
}
