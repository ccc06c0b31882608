package core

// aluOp is the 4-bit data-processing opcode field.
const (
	aluAND = iota
	aluEOR
	aluSUB
	aluRSB
	aluADD
	aluADC
	aluSBC
	aluRSC
	aluTST
	aluTEQ
	aluCMP
	aluCMN
	aluORR
	aluMOV
	aluBIC
	aluMVN
)

// execDataProcessing implements HandleALU: the 16-opcode data-processing
// family, operand 2 via immediate-rotate or shifted register, the
// PC-as-operand +8 pipelining quirk, and PC-as-destination mode switching.
func (c *Core) execDataProcessing(insn uint32) {
	opcode := (insn >> 21) & 0xf
	sBit := insn&(1<<20) != 0
	rn := (insn >> 16) & 0xf
	rd := (insn >> 12) & 0xf

	op2, shiftCarry := c.operand2(insn)

	op1 := c.R(rn)
	if rn == 15 {
		op1 += 4 // R15 is already current+4 post-fetch; operand reads are current+8
	}

	var result uint32
	var flags uint32
	isLogical := false
	isCompareOnly := false

	switch opcode {
	case aluAND:
		result = op1 & op2
		isLogical = true
	case aluEOR:
		result = op1 ^ op2
		isLogical = true
	case aluSUB:
		result = op1 - op2
		flags = subFlags(op1, op2, result)
	case aluRSB:
		result = op2 - op1
		flags = subFlags(op2, op1, result)
	case aluADD:
		result = op1 + op2
		flags = addFlags(op1, op2, result)
	case aluADC:
		carry := uint32(0)
		if c.cpsr&flagC != 0 {
			carry = 1
		}
		result = op1 + op2 + carry
		flags = addFlagsCarry(op1, op2, carry, result)
	case aluSBC:
		carry := uint32(1)
		if c.cpsr&flagC != 0 {
			carry = 0
		}
		result = op1 - op2 - carry
		flags = subFlagsBorrow(op1, op2, carry, result)
	case aluRSC:
		carry := uint32(1)
		if c.cpsr&flagC != 0 {
			carry = 0
		}
		result = op2 - op1 - carry
		flags = subFlagsBorrow(op2, op1, carry, result)
	case aluTST:
		result = op1 & op2
		isLogical = true
		isCompareOnly = true
	case aluTEQ:
		result = op1 ^ op2
		isLogical = true
		isCompareOnly = true
	case aluCMP:
		result = op1 - op2
		flags = subFlags(op1, op2, result)
		isCompareOnly = true
	case aluCMN:
		result = op1 + op2
		flags = addFlags(op1, op2, result)
		isCompareOnly = true
	case aluORR:
		result = op1 | op2
		isLogical = true
	case aluMOV:
		result = op2
		isLogical = true
	case aluBIC:
		result = op1 &^ op2
		isLogical = true
	case aluMVN:
		result = ^op2
		isLogical = true
	}

	if isLogical {
		flags = logicalFlags(result, shiftCarry, c.cpsr)
	}

	if !isCompareOnly {
		if rd == 15 {
			c.SetPC(result)
			if sBit && c.Mode() != ModeUSR && c.Mode() != ModeSYS {
				c.cpsr = c.SPSR()
			}
			return
		}
		c.SetR(rd, result)
	}

	if sBit {
		c.SetFlags(flags)
	}
}

// operand2 decodes the shifter operand of a data-processing instruction:
// bit 25 selects immediate (8-bit value rotated right by 2x a 4-bit
// amount) vs. register-shifted-register, matching arm7core.c's operand
// decode ahead of HandleALU.
func (c *Core) operand2(insn uint32) (value uint32, carryOut bool) {
	carryIn := c.cpsr&flagC != 0

	if insn&(1<<25) != 0 {
		imm := insn & 0xff
		rot := (insn >> 8) & 0xf
		if rot == 0 {
			return imm, carryIn
		}
		v, c2 := barrelShift(shiftROR, imm, rot*2, false, carryIn)
		return v, c2
	}

	rm := insn & 0xf
	kind := shiftType((insn >> 5) & 0x3)

	var amount uint32
	byReg := insn&(1<<4) != 0
	rmVal := c.R(rm)

	if byReg {
		rs := (insn >> 8) & 0xf
		amount = c.R(rs) & 0xff
		if rm == 15 {
			rmVal += 8 // R15 is already current+4; register-specified shift reads current+12
		}
	} else {
		amount = (insn >> 7) & 0x1f
		if rm == 15 {
			rmVal += 4 // R15 is already current+4; immediate-shift reads current+8
		}
	}

	return barrelShift(kind, rmVal, amount, byReg, carryIn)
}
