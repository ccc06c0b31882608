/*
 * ARM7TDMI - Low level memory
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

// Package memory defines the host-side bus boundary a core.Core talks
// through, plus a flat RAM implementation with no MMU.
package memory

// Bus is the memory side of the core/host boundary. All six accessors are
// unchecked reads/writes from the core's point of view; an implementation
// that wants to signal a data abort does so through the Faulter it was
// constructed with rather than by returning an error, since nothing in the
// ARM7TDMI instruction set inspects an error return from a memory access.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// Faulter receives a data-abort notification from a Bus implementation.
// core.Core implements Faulter.
type Faulter interface {
	SignalDataAbort()
}

// FlatRAM is the only Bus this module ships: a single contiguous region,
// no translation, out-of-range accesses reported through Faulter.
type FlatRAM struct {
	mem     []byte
	faulter Faulter
}

// NewFlatRAM allocates size bytes of RAM backing a Bus; out-of-range
// accesses call faulter.SignalDataAbort and return zero / are ignored.
func NewFlatRAM(size uint32, faulter Faulter) *FlatRAM {
	return &FlatRAM{mem: make([]byte, size), faulter: faulter}
}

func (m *FlatRAM) Read8(addr uint32) uint8 {
	if int(addr) >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return 0
	}
	return m.mem[addr]
}

func (m *FlatRAM) Read16(addr uint32) uint16 {
	if int(addr)+1 >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return 0
	}
	return uint16(m.mem[addr]) | uint16(m.mem[addr+1])<<8
}

func (m *FlatRAM) Read32(addr uint32) uint32 {
	if int(addr)+3 >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return 0
	}
	return uint32(m.mem[addr]) | uint32(m.mem[addr+1])<<8 |
		uint32(m.mem[addr+2])<<16 | uint32(m.mem[addr+3])<<24
}

func (m *FlatRAM) Write8(addr uint32, v uint8) {
	if int(addr) >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return
	}
	m.mem[addr] = v
}

func (m *FlatRAM) Write16(addr uint32, v uint16) {
	if int(addr)+1 >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return
	}
	m.mem[addr] = byte(v)
	m.mem[addr+1] = byte(v >> 8)
}

func (m *FlatRAM) Write32(addr uint32, v uint32) {
	if int(addr)+3 >= len(m.mem) {
		m.faulter.SignalDataAbort()
		return
	}
	m.mem[addr] = byte(v)
	m.mem[addr+1] = byte(v >> 8)
	m.mem[addr+2] = byte(v >> 16)
	m.mem[addr+3] = byte(v >> 24)
}

// Size returns the RAM's capacity in bytes.
func (m *FlatRAM) Size() uint32 { return uint32(len(m.mem)) }

// Load copies data into RAM starting at addr, for test and boot-image setup.
func (m *FlatRAM) Load(addr uint32, data []byte) {
	copy(m.mem[addr:], data)
}
