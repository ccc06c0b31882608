package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mrs encodes MRS Rd, CPSR|SPSR.
func mrs(useSPSR bool, rd uint32) uint32 {
	insn := encCondAL(0x010f_0000 | (rd << 12))
	if useSPSR {
		insn |= 1 << 22
	}
	return insn
}

// msrImm encodes MSR CPSR_f/MSR CPSR_fc, #imm.
func msrImm(useSPSR bool, flagsField bool, controlField bool, imm uint8) uint32 {
	insn := encCondAL((1 << 25) | (1 << 24) | (1 << 21) | (0xf << 12) | uint32(imm))
	if useSPSR {
		insn |= 1 << 22
	}
	if flagsField {
		insn |= 1 << 19
	}
	if controlField {
		insn |= 1 << 16
	}
	return insn
}

func TestMRSReadsCPSR(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	c.SetFlags(flagZ)
	bus.Write32(c.PC(), mrs(false, 0))
	c.Step()
	require.Equal(t, c.cpsr, c.R(0))
}

func TestMSRFlagsOnlyLeavesModeAlone(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	bus.Write32(c.PC(), msrImm(false, true, false, 0)) // MSR CPSR_f, #0: clears all flags
	c.cpsr |= flagN | flagZ | flagC | flagV
	c.Step()
	require.Zero(t, c.cpsr&(flagN|flagZ|flagC|flagV))
	require.Equal(t, ModeUSR, c.Mode())
}

func TestMSRControlFieldBlockedInUserMode(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeUSR)
	// Immediate value encodes ModeSVC in the control byte.
	bus.Write32(c.PC(), msrImm(false, false, true, uint8(ModeSVC)))
	c.Step()
	require.Equal(t, ModeUSR, c.Mode(), "USR mode cannot write its own control field")
}

func TestMSRControlFieldAllowedInPrivilegedMode(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeSVC)
	bus.Write32(c.PC(), msrImm(false, false, true, uint8(ModeUSR)))
	c.Step()
	require.Equal(t, ModeUSR, c.Mode())
}

func TestMSRToSPSRDoesNotAffectCPSR(t *testing.T) {
	c, bus := newTestCore()
	c.SwitchMode(ModeSVC)
	before := c.cpsr
	bus.Write32(c.PC(), msrImm(true, true, false, 0xf0)) // arbitrary rotate-decoded flags value
	c.Step()
	require.Equal(t, before, c.cpsr)
}
