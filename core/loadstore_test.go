package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLDRSTRRoundTrip(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetR(1, 0x1000)
	c.SetR(2, 0xcafebabe)
	bus.Write32(c.PC(), ldrStr(false, 2, 1, 0)) // STR r2, [r1]
	c.Step()
	require.Equal(t, uint32(0xcafebabe), bus.Read32(0x1000))

	bus.Write32(c.PC(), ldrStr(true, 3, 1, 0)) // LDR r3, [r1]
	c.Step()
	require.Equal(t, uint32(0xcafebabe), c.R(3))
}

func TestLDRUnalignedWordRotates(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	bus.Write32(0x100, 0x11223344)
	c.SetR(1, 0x101) // unaligned by 1 byte
	bus.Write32(c.PC(), ldrStr(true, 0, 1, 0))
	c.Step()
	require.Equal(t, uint32(0x44112233), c.R(0), "unaligned LDR rotates the aligned word by 8*(addr&3)")
}

func TestLDRByteZeroExtends(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	bus.Write32(0x200, 0xffffff80)
	c.SetR(1, 0x200)
	insn := ldrStr(true, 0, 1, 0) | (1 << 22) // byte transfer
	bus.Write32(c.PC(), insn)
	c.Step()
	require.Equal(t, uint32(0x80), c.R(0), "LDRB must zero-extend, not sign-extend")
}

func TestLDRHalfwordUnsignedZeroExtends(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	bus.Write32(0x300, 0x0000fff0)
	c.SetR(1, 0x300)
	bus.Write32(c.PC(), halfwordXfer(true, 0x1, 0, 1, 0))
	c.Step()
	require.Equal(t, uint32(0xfff0), c.R(0))
}

func TestLDRSHSignExtends(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	bus.Write32(0x300, 0x0000fff0)
	c.SetR(1, 0x300)
	bus.Write32(c.PC(), halfwordXfer(true, 0x3, 0, 1, 0))
	c.Step()
	require.Equal(t, uint32(0xffff_fff0), c.R(0), "LDRSH must sign-extend")
}

func TestSTRWritebackPostIndexed(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetR(1, 0x500)
	c.SetR(2, 0x77)
	// Post-indexed STR: P=0, U=1, offset 4, writeback is implicit for post-index.
	insn := encCondAL((1<<26)|(1<<23)|(2<<12)|(1<<16)) | 4
	bus.Write32(c.PC(), insn)
	c.Step()
	require.Equal(t, uint32(0x77), bus.Read32(0x500))
	require.Equal(t, uint32(0x504), c.R(1))
}
