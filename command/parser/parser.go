/*
 * ARM7TDMI - Command parser.
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

// Package parser implements the debug console's command grammar: a small
// tokenizer over a single input line plus a table of commands matched by
// unique prefix, the way the rest of this module's ancestry parses its
// interactive consoles.
package parser

import (
	"errors"
	"io"
	"os"
	"unicode"

	"github.com/rcornwell/arm7tdmi/core"
)

// Console is the state a command operates on: the Core being debugged, the
// set of active breakpoints, and where textual output goes.
type Console struct {
	Core        *core.Core
	Breakpoints map[uint32]bool
	Out         io.Writer
}

// NewConsole returns a Console ready to drive cpu, writing to os.Stdout.
func NewConsole(cpu *core.Core) *Console {
	return &Console{Core: cpu, Breakpoints: map[uint32]bool{}, Out: os.Stdout}
}

type cmd struct {
	name     string // Command name.
	min      int    // Minimum unique-prefix length.
	process  func(*cmdLine, *Console) (bool, error)
	complete func(*cmdLine, *Console) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "continue", min: 1, process: cont},
	{name: "reset", min: 3, process: reset},
	{name: "break", min: 2, process: setBreak},
	{name: "unbreak", min: 4, process: clearBreak},
	{name: "registers", min: 1, process: showRegisters},
	{name: "examine", min: 1, process: examine},
	{name: "deposit", min: 1, process: deposit},
	{name: "trace", min: 2, process: trace, complete: traceComplete},
	{name: "untrace", min: 4, process: untrace, complete: traceComplete},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand runs one command line against con. The returned bool
// reports whether the console should exit.
func ProcessCommand(commandLine string, con *Console) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}

	return match[0].process(&line, con)
}

// CompleteCmd is the liner completer: it completes the command name itself,
// or delegates to a command's own completer once the name is unambiguous.
func CompleteCmd(commandLine string, con *Console) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.line[line.pos] == ' ' {
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(&line, con)
	}

	var matches []string
	for _, m := range cmdList {
		if matchCommand(m, name) {
			matches = append(matches, m.name)
		}
	}
	return matches
}

// matchCommand reports whether command matches m.name for at least m's
// minimum unique-prefix length.
func matchCommand(m cmd, command string) bool {
	if len(command) < m.min || len(command) > len(m.name) {
		return false
	}
	return m.name[:len(command)] == command
}

func matchList(command string) []cmd {
	if command == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line)
}

func (line *cmdLine) peek() byte {
	if line.isEOL() {
		return 0
	}
	return line.line[line.pos]
}

// getWord returns the next whitespace-delimited, lowercased token.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	word := line.line[start:line.pos]
	out := make([]byte, len(word))
	for i := range word {
		by := word[i]
		if by >= 'A' && by <= 'Z' {
			by += 'a' - 'A'
		}
		out[i] = by
	}
	return string(out)
}

// getHex parses the next token as a hexadecimal (no 0x prefix) uint32.
func (line *cmdLine) getHex() (uint32, error) {
	tok := line.getWord()
	if tok == "" {
		return 0, errors.New("expected a hex value")
	}
	var value uint32
	for i := range tok {
		by := tok[i]
		var digit uint32
		switch {
		case by >= '0' && by <= '9':
			digit = uint32(by - '0')
		case by >= 'a' && by <= 'f':
			digit = uint32(by-'a') + 10
		default:
			return 0, errors.New("not a hex value: " + tok)
		}
		value = (value << 4) | digit
	}
	return value, nil
}
