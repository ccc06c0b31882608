/*
 * ARM7TDMI - Machine configuration
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

// Package config loads the TOML machine description main.go builds a
// core.Core and memory.FlatRAM from.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load describes one memory region preloaded from a file at startup, e.g. a
// ROM image or a test program.
type Load struct {
	Address uint32 `toml:"address"`
	File    string `toml:"file"`
}

// Machine is the top-level shape of a configuration file.
type Machine struct {
	MemorySize  uint32   `toml:"memory_size"`  // bytes, default 16 MiB if zero
	EntryPoint  uint32   `toml:"entry_point"`  // initial PC after Reset, default 0
	HighVectors bool     `toml:"high_vectors"` // relocate exception vectors to 0xffff0000
	DebugTraces []string `toml:"debug_traces"` // internal/debug category names to enable at startup
	LogFile     string   `toml:"log_file"`     // destination for structured log records
	Loads       []Load   `toml:"load"`
}

const defaultMemorySize = 16 * 1024 * 1024

// LoadFile reads and parses a TOML configuration file, filling in defaults
// for anything the file leaves zero.
func LoadFile(path string) (*Machine, error) {
	var m Machine
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if m.MemorySize == 0 {
		m.MemorySize = defaultMemorySize
	}
	return &m, nil
}

// ReadImage loads one configured image's raw bytes; main.go hands the
// result to memory.FlatRAM.Load since FlatRAM's backing array isn't
// exposed outside the memory package.
func (m *Machine) ReadImage(l Load) ([]byte, error) {
	data, err := os.ReadFile(l.File)
	if err != nil {
		return nil, fmt.Errorf("reading load image %s: %w", l.File, err)
	}
	return data, nil
}
