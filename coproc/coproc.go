/*
 * ARM7TDMI - Coprocessor dispatch boundary
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package coproc defines the host-provided callback boundary a core.Core
// dispatches CDP/MRC/MCR/LDC/STC instructions through.
package coproc

// ReadWord and WriteWord let a Coprocessor stream a data-transfer burst
// through the core's memory bus without that package importing memory
// itself.
type ReadWord func(addr uint32) uint32
type WriteWord func(addr uint32, v uint32)

// Coprocessor is the callback set a host binds to a coprocessor number
// (0-15). A core.Core with no Coprocessor bound to the number named in an
// instruction raises an undefined-instruction exception instead of calling
// into it.
type Coprocessor interface {
	// DataOp executes a CDP instruction; opcode carries CP opc/CRn/CRd/CRm/CP.
	DataOp(opcode uint32)

	// RegFromCP executes MRC, returning the value moved into the ARM register.
	RegFromCP(opcode uint32) uint32

	// RegToCP executes MCR, receiving the ARM register's value.
	RegToCP(opcode uint32, value uint32)

	// DataRead executes LDC. rn is the coprocessor's base register, writable
	// for auto-increment addressing modes; read streams words via mem.
	DataRead(opcode uint32, rn *uint32, mem ReadWord)

	// DataWrite executes STC, mirroring DataRead for stores.
	DataWrite(opcode uint32, rn *uint32, mem WriteWord)

	// ControlMMUEnabled reports the system coprocessor's MMU-enable bit.
	// A core with no MMU/bus-translation layer of its own still needs this
	// getter so host code modeling a CP15 can report state the exception
	// prioritizer and reset sequence are architecturally defined to read.
	ControlMMUEnabled() bool

	// ControlHighVectors reports the system coprocessor's high-vectors
	// control bit; when true, exception vector addresses are ORed with
	// 0xffff0000 instead of read as plain low addresses.
	ControlHighVectors() bool
}
