/*
 * ARM7TDMI - Bitmask debug-option registry
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

// Package debug implements a bitmask-gated trace facility: each call site
// names the category it belongs to, and only categories turned on via Set
// (from a config file or the debug console) produce output.
package debug

import (
	"fmt"
	"log/slog"
)

// Debug option bits, one per trace category.
const (
	Inst = 1 << iota
	Data
	IRQ
	Mem
	Coproc
)

var names = map[string]int{
	"INST":   Inst,
	"DATA":   Data,
	"IRQ":    IRQ,
	"MEM":    Mem,
	"COPROC": Coproc,
}

var mask int

// Set enables a debug category by name, returning false if the name is not
// recognized.
func Set(name string) bool {
	bit, ok := names[name]
	if !ok {
		return false
	}
	mask |= bit
	return true
}

// Clear disables a debug category by name.
func Clear(name string) {
	if bit, ok := names[name]; ok {
		mask &^= bit
	}
}

// Enabled reports whether a category is currently turned on.
func Enabled(category int) bool {
	return mask&category != 0
}

// Names lists every recognized category name, for the debug console's
// completer.
func Names() []string {
	list := make([]string, 0, len(names))
	for n := range names {
		list = append(list, n)
	}
	return list
}

// Tracef logs a formatted message through the default slog logger when
// category is enabled; a no-op (no formatting cost beyond the mask check)
// otherwise.
func Tracef(category int, format string, a ...interface{}) {
	if mask&category == 0 {
		return
	}
	slog.Debug(fmt.Sprintf(format, a...))
}
