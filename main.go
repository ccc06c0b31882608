/*
 * ARM7TDMI - Main process.
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

package main

import (
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/arm7tdmi/command/parser"
	"github.com/rcornwell/arm7tdmi/command/reader"
	"github.com/rcornwell/arm7tdmi/config"
	"github.com/rcornwell/arm7tdmi/core"
	"github.com/rcornwell/arm7tdmi/internal/debug"
	"github.com/rcornwell/arm7tdmi/logger"
	"github.com/rcornwell/arm7tdmi/memory"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "arm7.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	if *optConfig == "" {
		os.Stderr.WriteString("please specify a configuration file\n")
		os.Exit(1)
	}
	if _, err := os.Stat(*optConfig); os.IsNotExist(err) {
		os.Stderr.WriteString("configuration file can't be found: " + *optConfig + "\n")
		os.Exit(1)
	}

	machine, err := config.LoadFile(*optConfig)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logFile := *optLogFile
	if logFile == "" {
		logFile = machine.LogFile
	}
	var file io.Writer = io.Discard
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			os.Stderr.WriteString("creating log file: " + err.Error() + "\n")
			os.Exit(1)
		}
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	debugEcho := len(machine.DebugTraces) > 0
	if debugEcho {
		programLevel.Set(slog.LevelDebug)
	}
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debugEcho))
	slog.SetDefault(Logger)

	Logger.Info("arm7tdmi started")

	for _, cat := range machine.DebugTraces {
		if !debug.Set(cat) {
			Logger.Warn("unknown debug trace category", "category", cat)
		}
	}

	cpu := &core.Core{}
	bus := memory.NewFlatRAM(machine.MemorySize, cpu)
	cpu.Bus = bus
	cpu.Logger = Logger
	cpu.HighVectors = machine.HighVectors
	cpu.Reset()

	for _, l := range machine.Loads {
		data, err := machine.ReadImage(l)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		bus.Load(l.Address, data)
	}
	cpu.SetPC(machine.EntryPoint)

	con := parser.NewConsole(cpu)
	reader.ConsoleReader(con)

	Logger.Info("arm7tdmi shutting down")
}
