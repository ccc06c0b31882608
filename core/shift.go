package core

// shiftType is the 2-bit shift-type field shared by Op2-shifted-register
// and LDM/STM-style shifted offsets.
type shiftType uint32

const (
	shiftLSL shiftType = iota
	shiftLSR
	shiftASR
	shiftROR
)

// barrelShift implements the barrel shifter: decodeShift in arm7core.c.
// rm is the value being shifted, amount is the shift amount (0-255, only
// the low 8 bits are meaningful), byReg reports whether the amount came
// from a register (affecting the amount==0 and amount==32 special cases),
// and carryIn is the current CPSR carry flag (returned unchanged for LSL#0
// and for a register-specified shift by 0, and rotated into bit 31 by RRX).
func barrelShift(kind shiftType, rm uint32, amount uint32, byReg bool, carryIn bool) (result uint32, carryOut bool) {
	if byReg && amount == 0 {
		// Register-specified shift by 0: value passes through unchanged,
		// carry is whatever it already was.
		return rm, carryIn
	}

	switch kind {
	case shiftLSL:
		switch {
		case amount == 0:
			return rm, carryIn
		case amount < 32:
			return rm << amount, (rm>>(32-amount))&1 != 0
		case amount == 32:
			return 0, rm&1 != 0
		default:
			return 0, false
		}

	case shiftLSR:
		switch {
		case amount == 0:
			// LSR#0 in an encoding is really LSR#32.
			return 0, rm&0x8000_0000 != 0
		case amount < 32:
			return rm >> amount, (rm>>(amount-1))&1 != 0
		case amount == 32:
			return 0, rm&0x8000_0000 != 0
		default:
			return 0, false
		}

	case shiftASR:
		s := int32(rm)
		switch {
		case amount == 0 || amount >= 32:
			if s < 0 {
				return 0xffff_ffff, true
			}
			return 0, false
		default:
			return uint32(s >> amount), (rm>>(amount-1))&1 != 0
		}

	case shiftROR:
		if amount == 0 {
			// ROR#0 in an encoding is RRX: rotate right through carry by 1.
			c := uint32(0)
			if carryIn {
				c = 1
			}
			return (c << 31) | (rm >> 1), rm&1 != 0
		}
		amount &= 31
		if amount == 0 {
			return rm, rm&0x8000_0000 != 0
		}
		return (rm >> amount) | (rm << (32 - amount)), (rm>>(amount-1))&1 != 0
	}
	return rm, carryIn
}
