package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrelShiftLSLImmediate(t *testing.T) {
	v, carry := barrelShift(shiftLSL, 0x1, 4, false, false)
	require.Equal(t, uint32(0x10), v)
	require.False(t, carry)

	v, carry = barrelShift(shiftLSL, 0x8000_0000, 1, false, false)
	require.Equal(t, uint32(0), v)
	require.True(t, carry, "LSL shifting the top bit out sets carry")
}

func TestBarrelShiftLSLImmediateZeroIsNoop(t *testing.T) {
	v, carry := barrelShift(shiftLSL, 0x1234, 0, false, true)
	require.Equal(t, uint32(0x1234), v)
	require.True(t, carry, "LSL#0 leaves carry untouched")
}

func TestBarrelShiftLSRImmediateZeroMeans32(t *testing.T) {
	v, carry := barrelShift(shiftLSR, 0x8000_0000, 0, false, false)
	require.Equal(t, uint32(0), v)
	require.True(t, carry, "LSR#0 encodes LSR#32: carry is bit 31")
}

func TestBarrelShiftASRSignExtends(t *testing.T) {
	v, carry := barrelShift(shiftASR, 0x8000_0000, 31, false, false)
	require.Equal(t, uint32(0xffff_ffff), v)
	require.False(t, carry, "ASR #31 shifts bit 30 out last, and bit 30 of 0x80000000 is clear")
}

func TestBarrelShiftASRAmount32OrMoreSignFills(t *testing.T) {
	v, carry := barrelShift(shiftASR, 0x7fff_ffff, 40, false, false)
	require.Equal(t, uint32(0), v)
	require.False(t, carry)

	v, carry = barrelShift(shiftASR, 0x8000_0000, 40, false, false)
	require.Equal(t, uint32(0xffff_ffff), v)
	require.True(t, carry)
}

func TestBarrelShiftRORZeroIsRRX(t *testing.T) {
	v, carry := barrelShift(shiftROR, 0x1, 0, false, true)
	require.Equal(t, uint32(0x8000_0000), v, "RRX rotates the carry flag into bit 31")
	require.True(t, carry, "the bit rotated out becomes the new carry")
}

func TestBarrelShiftRORByAmount(t *testing.T) {
	v, carry := barrelShift(shiftROR, 0x1, 4, false, false)
	require.Equal(t, uint32(0x1000_0000), v)
	require.False(t, carry)
}

func TestBarrelShiftByRegisterZeroAmountIsNoop(t *testing.T) {
	v, carry := barrelShift(shiftLSL, 0x55, 0, true, true)
	require.Equal(t, uint32(0x55), v)
	require.True(t, carry, "register-specified shift by 0 passes the carry through unchanged")
}

func TestBarrelShiftLSLAmountOver32(t *testing.T) {
	v, carry := barrelShift(shiftLSL, 0xffff_ffff, 40, true, false)
	require.Equal(t, uint32(0), v)
	require.False(t, carry)
}
