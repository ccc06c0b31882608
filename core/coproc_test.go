package core

import (
	"testing"

	"github.com/rcornwell/arm7tdmi/coproc"
	"github.com/stretchr/testify/require"
)

// fakeCoproc is a minimal coproc.Coprocessor used only to exercise dispatch.
type fakeCoproc struct {
	lastDataOp   uint32
	regs         [16]uint32
	lastDataRead uint32
	lastWritten  uint32
}

func (f *fakeCoproc) DataOp(opcode uint32) { f.lastDataOp = opcode }

func (f *fakeCoproc) RegFromCP(opcode uint32) uint32 {
	crn := (opcode >> 16) & 0xf
	return f.regs[crn]
}

func (f *fakeCoproc) RegToCP(opcode uint32, value uint32) {
	crn := (opcode >> 16) & 0xf
	f.regs[crn] = value
}

func (f *fakeCoproc) DataRead(opcode uint32, rn *uint32, mem coproc.ReadWord) {
	f.lastDataRead = mem(*rn)
}

func (f *fakeCoproc) DataWrite(opcode uint32, rn *uint32, mem coproc.WriteWord) {
	f.lastWritten = *rn
	mem(*rn, 0xcafe)
}

func (f *fakeCoproc) ControlMMUEnabled() bool  { return false }
func (f *fakeCoproc) ControlHighVectors() bool { return false }

func TestCDPDispatchesToBoundCoprocessor(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	cop := &fakeCoproc{}
	c.Coproc[3] = cop
	insn := cdpInsn(3, 1, 0, 0, 0, 0)
	bus.Write32(c.PC(), insn)
	c.Step()
	require.Equal(t, insn, cop.lastDataOp)
}

func TestCDPOnUnboundCoprocessorRaisesUndefined(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeSVC)
	bus.Write32(c.PC(), cdpInsn(7, 1, 0, 0, 0, 0))
	c.Step()
	require.Equal(t, ModeUND, c.Mode(), "unbound CP# traps as undefined instruction")
}

func TestMRCTransfersCoprocessorRegisterToARM(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	cop := &fakeCoproc{}
	cop.regs[0] = 0x4242
	c.Coproc[0] = cop
	bus.Write32(c.PC(), mrcMcrInsn(true, 0, 0, 5, 0, 0, 0)) // MRC p0, 0, r5, c0, c0, 0
	c.Step()
	require.Equal(t, uint32(0x4242), c.R(5))
}

func TestMCRTransfersARMRegisterToCoprocessor(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	cop := &fakeCoproc{}
	c.Coproc[0] = cop
	c.SetR(5, 0x99)
	bus.Write32(c.PC(), mrcMcrInsn(false, 0, 0, 5, 0, 0, 0)) // MCR p0, 0, r5, c0, c0, 0
	c.Step()
	require.Equal(t, uint32(0x99), cop.regs[0])
}

func TestLDCLoadsThroughCoprocessorDataRead(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	cop := &fakeCoproc{}
	c.Coproc[0] = cop
	c.SetR(1, 0x5000)
	bus.Write32(0x5000, 0x1122)
	bus.Write32(c.PC(), ldcStcInsn(true, 0, 0, 1, 0)) // LDC p0, c0, [r1]
	c.Step()
	require.Equal(t, uint32(0x1122), cop.lastDataRead)
}

func TestSTCOnUnboundCoprocessorRaisesUndefined(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeSVC)
	c.SetR(1, 0x6000)
	bus.Write32(c.PC(), ldcStcInsn(false, 5, 0, 1, 0))
	c.Step()
	require.Equal(t, ModeUND, c.Mode())
}
