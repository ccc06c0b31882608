package core

// A minimal instruction encoder used only by tests, so table-driven cases
// can read as mnemonics instead of hand-packed hex.

func encCondAL(bits uint32) uint32 { return 0xe0000000 | bits }

// dataProc encodes a register-register-register data-processing
// instruction: <op>{S} Rd, Rn, Rm.
func dataProc(op uint32, s bool, rd, rn, rm uint32) uint32 {
	insn := encCondAL((op << 21) | (rn << 16) | (rd << 12) | rm)
	if s {
		insn |= 1 << 20
	}
	return insn
}

// dataProcImm encodes <op>{S} Rd, Rn, #imm (rotate 0).
func dataProcImm(op uint32, s bool, rd, rn uint32, imm uint8) uint32 {
	insn := encCondAL((1 << 25) | (op << 21) | (rn << 16) | (rd << 12) | uint32(imm))
	if s {
		insn |= 1 << 20
	}
	return insn
}

// movImm encodes MOV Rd, #imm.
func movImm(rd uint32, imm uint8) uint32 {
	return dataProcImm(aluMOV, false, rd, 0, imm)
}

// bInsn encodes B/BL with a pre-shifted (word) signed offset.
func bInsn(link bool, offsetWords int32) uint32 {
	insn := encCondAL(0x0a00_0000 | (uint32(offsetWords) & 0x00ff_ffff))
	if link {
		insn |= 1 << 24
	}
	return insn
}

// ldrStr encodes LDR/STR Rd, [Rn, #imm] (pre-indexed, up, word, no writeback).
func ldrStr(load bool, rd, rn uint32, imm uint32) uint32 {
	insn := encCondAL((1<<26)|(1<<24)|(1<<23)|(rn<<16)|(rd<<12)) | (imm & 0xfff)
	if load {
		insn |= 1 << 20
	}
	return insn
}

// ldmStm encodes LDM/STM Rn{!}, {reglist} with explicit P/U/S bits.
func ldmStm(load, pre, up, s, writeback bool, rn uint32, regList uint16) uint32 {
	insn := encCondAL((1 << 27) | (rn << 16) | uint32(regList))
	if load {
		insn |= 1 << 20
	}
	if writeback {
		insn |= 1 << 21
	}
	if s {
		insn |= 1 << 22
	}
	if up {
		insn |= 1 << 23
	}
	if pre {
		insn |= 1 << 24
	}
	return insn
}

// halfwordXfer encodes a halfword/signed-byte/doubleword transfer with an
// immediate offset, pre-indexed and up, no writeback: sh selects the
// LDRH(01)/LDRSB(10)/LDRSH(11) (load) or STRH(01)/LDRD(10)/STRD(11)
// (store) sub-opcode.
func halfwordXfer(load bool, sh uint32, rd, rn uint32, imm uint8) uint32 {
	insn := encCondAL((1<<24)|(1<<23)|(1<<22)|(1<<7)|(sh<<5)|(1<<4)|
		(rn<<16)|(rd<<12)|uint32(imm&0xf)|((uint32(imm)&0xf0)<<4))
	if load {
		insn |= 1 << 20
	}
	return insn
}

// mulInsn encodes MUL{S} Rd, Rm, Rs.
func mulInsn(s bool, rd, rm, rs uint32) uint32 {
	insn := encCondAL(0x0000_0090 | (rd << 16) | (rs << 8) | rm)
	if s {
		insn |= 1 << 20
	}
	return insn
}

// mullInsn encodes {U,S}{MULL,MLAL}{S} RdLo, RdHi, Rm, Rs.
func mullInsn(signed, accumulate, s bool, rdHi, rdLo, rm, rs uint32) uint32 {
	insn := encCondAL(0x0080_0090 | (rdHi << 16) | (rdLo << 12) | (rs << 8) | rm)
	if signed {
		insn |= 1 << 22
	}
	if accumulate {
		insn |= 1 << 21
	}
	if s {
		insn |= 1 << 20
	}
	return insn
}

// swpInsn encodes SWP{B} Rd, Rm, [Rn].
func swpInsn(byteSwap bool, rd, rm, rn uint32) uint32 {
	insn := encCondAL(0x0100_0090 | (rn << 16) | (rd << 12) | rm)
	if byteSwap {
		insn |= 1 << 22
	}
	return insn
}

// cdpInsn encodes CDP cp, opcode1, CRd, CRn, CRm, opcode2: bits27-25=111,
// bit24=0, bit4=0.
func cdpInsn(cpNum, opcode1, crd, crn, crm, opcode2 uint32) uint32 {
	return encCondAL(0x0e00_0000 | (opcode1 << 20) | (crn << 16) |
		(crd << 12) | (cpNum << 8) | (opcode2 << 5) | crm)
}

// mrcMcrInsn encodes MRC/MCR cp, opcode1, Rd, CRn, CRm, opcode2: bits27-25=111,
// bit24=0, bit4=1.
func mrcMcrInsn(toARM bool, cpNum, opcode1, rd, crn, crm, opcode2 uint32) uint32 {
	insn := encCondAL(0x0e00_0010 | (opcode1 << 21) |
		(crn << 16) | (rd << 12) | (cpNum << 8) | (opcode2 << 5) | crm)
	if toARM {
		insn |= 1 << 20
	}
	return insn
}

// ldcStcInsn encodes LDC/STC cp, CRd, [Rn, #imm] (pre-indexed, up, no writeback).
func ldcStcInsn(load bool, cpNum, crd, rn uint32, imm uint8) uint32 {
	insn := encCondAL((1<<27)|(1<<26)|(1<<24)|(1<<23)|(rn<<16)|(crd<<12)|(cpNum<<8)) | uint32(imm)
	if load {
		insn |= 1 << 20
	}
	return insn
}

// fakeBus is a tiny in-test memory implementation used where a test wants
// direct control without going through memory.FlatRAM.
type fakeBus struct {
	mem map[uint32]uint32
	c   *Core
}

func newFakeBus() *fakeBus { return &fakeBus{mem: map[uint32]uint32{}} }

func (b *fakeBus) Read8(addr uint32) uint8 {
	return uint8(b.Read32(addr&^3) >> ((addr & 3) * 8))
}

func (b *fakeBus) Read16(addr uint32) uint16 {
	return uint16(b.Read32(addr&^3) >> ((addr & 2) * 8))
}

func (b *fakeBus) Read32(addr uint32) uint32 { return b.mem[addr&^3] }

func (b *fakeBus) Write8(addr uint32, v uint8) {
	word := b.mem[addr&^3]
	shift := (addr & 3) * 8
	word = (word &^ (0xff << shift)) | (uint32(v) << shift)
	b.mem[addr&^3] = word
}

func (b *fakeBus) Write16(addr uint32, v uint16) {
	word := b.mem[addr&^3]
	shift := (addr & 2) * 8
	word = (word &^ (0xffff << shift)) | (uint32(v) << shift)
	b.mem[addr&^3] = word
}

func (b *fakeBus) Write32(addr uint32, v uint32) { b.mem[addr&^3] = v }

func newTestCore() (*Core, *fakeBus) {
	bus := newFakeBus()
	c := NewCore(bus)
	return c, bus
}
