package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSTMIncrementAfter(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetR(1, 0xaaaa)
	c.SetR(2, 0xbbbb)
	c.SetR(13, 0x2000)

	insn := ldmStm(false, false, true, false, true, 13, (1<<1)|(1<<2))
	bus.Write32(c.PC(), insn)
	c.Step()

	require.Equal(t, uint32(0xaaaa), bus.Read32(0x2000))
	require.Equal(t, uint32(0xbbbb), bus.Read32(0x2004))
	require.Equal(t, uint32(0x2008), c.R(13), "writeback must advance past both stored words")
}

func TestLDMBaseInListSuppressesWriteback(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetR(13, 0x3000)
	bus.Write32(0x3000, 0x1111)
	bus.Write32(0x3004, 0x4000) // new r13 value loaded from memory

	insn := ldmStm(true, false, true, false, true, 13, (1<<0)|(1<<13))
	bus.Write32(c.PC(), insn)
	c.Step()

	require.Equal(t, uint32(0x1111), c.R(0))
	require.Equal(t, uint32(0x4000), c.R(13), "the loaded value of the base wins over writeback")
}

func TestLDMWithSAndPCRestoresCPSR(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeSVC)
	c.SetR(13, 0x4000)
	bus.Write32(0x4000, 0x5000) // new PC

	insn := ldmStm(true, false, true, true, false, 13, (1 << 15))
	bus.Write32(c.PC(), insn)
	c.SetSPSR(uint32(ModeUSR) | flagZ)
	c.Step()

	require.Equal(t, uint32(0x5000), c.PC())
	require.Equal(t, ModeUSR, c.Mode())
	require.NotZero(t, c.cpsr&flagZ)
}

func TestSTMPreDecrementAddressing(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetR(13, 0x1010)
	c.SetR(0, 0x77)

	insn := ldmStm(false, true, false, false, true, 13, 1<<0)
	bus.Write32(c.PC(), insn)
	c.Step()

	require.Equal(t, uint32(0x77), bus.Read32(0x100c))
	require.Equal(t, uint32(0x100c), c.R(13))
}
