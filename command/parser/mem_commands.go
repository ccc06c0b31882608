/*
 * ARM7TDMI - Memory examine/deposit commands.
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

package parser

import (
	"fmt"
	"strings"

	"github.com/rcornwell/arm7tdmi/util/hex"
)

const examineWordsPerLine = 4

// examine <addr> [count] dumps count words (default 1) of memory starting
// at addr, four words per line with the line's starting address as a
// label, the way the teacher's memory dump commands group output.
func examine(line *cmdLine, con *Console) (bool, error) {
	addr, err := line.getHex()
	if err != nil {
		return false, err
	}

	count := uint32(1)
	if !line.isEOL() {
		count, err = line.getHex()
		if err != nil {
			return false, err
		}
	}

	var str strings.Builder
	for i := uint32(0); i < count; i++ {
		if i%examineWordsPerLine == 0 {
			if i != 0 {
				str.WriteByte('\n')
			}
			fmt.Fprintf(&str, "%08x: ", addr+i*4)
		}
		word := []uint32{con.Core.Bus.Read32(addr + i*4)}
		hex.FormatWord(&str, word)
	}
	str.WriteByte('\n')
	fmt.Fprint(con.Out, str.String())
	return false, nil
}

// deposit <addr> <value> writes a single word to memory.
func deposit(line *cmdLine, con *Console) (bool, error) {
	addr, err := line.getHex()
	if err != nil {
		return false, err
	}
	value, err := line.getHex()
	if err != nil {
		return false, err
	}
	con.Core.Bus.Write32(addr, value)
	return false, nil
}
