/*
 * HP16C - Calculator commands
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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	core "github.com/rcornwell/hp16c/emu/core"
	"github.com/rcornwell/hp16c/emu/engine"
	"github.com/rcornwell/hp16c/emu/memory"
)

var cmdList []cmd

func init() {
	cmdList = []cmd{
		// Stack.
		{Name: "enter", Min: 3, Help: "Duplicate X into Y, next number overwrites X", Process: op((*engine.Engine).Enter)},
		{Name: "drop", Min: 2, Help: "Remove X, stack drops", Process: op((*engine.Engine).Drop)},
		{Name: "swap", Alias: []string{"x<>y"}, Min: 2, Help: "Exchange X and Y", Process: op((*engine.Engine).SwapXY)},
		{Name: "rv", Alias: []string{"rdn"}, Help: "Roll stack down", Process: op((*engine.Engine).RollDown)},
		{Name: "r^", Alias: []string{"rup"}, Help: "Roll stack up", Process: op((*engine.Engine).RollUp)},
		{Name: "clx", Help: "Clear X", Process: op((*engine.Engine).ClearX)},
		{Name: "clear", Alias: []string{"clr"}, Min: 3, Help: "Clear stack", Process: op((*engine.Engine).ClearStack)},
		{Name: "reset", Min: 5, Help: "Clear stack, registers and flags", Process: op((*engine.Engine).Reset)},

		// Arithmetic.
		{Name: "+", Help: "Y plus X", Process: op((*engine.Engine).Add)},
		{Name: "-", Help: "Y minus X", Process: op((*engine.Engine).Sub)},
		{Name: "*", Alias: []string{"x"}, Help: "Y times X", Process: op((*engine.Engine).Mul)},
		{Name: "/", Help: "Y divided by X", Process: opErr((*engine.Engine).Div)},
		{Name: "rmd", Alias: []string{"%"}, Help: "Remainder of Y divided by X", Process: opErr((*engine.Engine).Rem)},
		{Name: "chs", Alias: []string{"neg"}, Help: "Two's complement of X", Process: op((*engine.Engine).Negate)},

		// Logic.
		{Name: "and", Alias: []string{"&"}, Help: "Y and X", Process: op((*engine.Engine).And)},
		{Name: "or", Alias: []string{"|"}, Help: "Y or X", Process: op((*engine.Engine).Or)},
		{Name: "xor", Alias: []string{"^"}, Help: "Y exclusive or X", Process: op((*engine.Engine).Xor)},
		{Name: "not", Alias: []string{"~"}, Help: "Complement X", Process: op((*engine.Engine).Not)},

		// Shifts.
		{Name: "sl", Help: "Shift X left [n]", Process: shift(engine.ShiftLeft)},
		{Name: "sr", Help: "Shift X right [n]", Process: shift(engine.ShiftRight)},
		{Name: "asr", Help: "Arithmetic shift X right [n]", Process: shift(engine.ShiftRightArith)},
		{Name: "rl", Help: "Rotate X left [n]", Process: shift(engine.RotateLeft)},
		{Name: "rr", Help: "Rotate X right [n]", Process: shift(engine.RotateRight)},
		{Name: "sln", Help: "Shift X left by Y", Process: shiftBy(engine.ShiftLeft)},
		{Name: "srn", Help: "Shift X right by Y", Process: shiftBy(engine.ShiftRight)},
		{Name: "asrn", Help: "Arithmetic shift X right by Y", Process: shiftBy(engine.ShiftRightArith)},
		{Name: "rln", Help: "Rotate X left by Y", Process: shiftBy(engine.RotateLeft)},
		{Name: "rrn", Help: "Rotate X right by Y", Process: shiftBy(engine.RotateRight)},

		// Modes.
		{Name: "bin", Help: "Binary mode", Process: setBase(engine.Binary)},
		{Name: "oct", Help: "Octal mode", Process: setBase(engine.Octal)},
		{Name: "dec", Help: "Decimal mode", Process: setBase(engine.Decimal)},
		{Name: "hex", Help: "Hexadecimal mode", Process: setBase(engine.Hexadecimal)},
		{Name: "ws", Help: "Set word size to n bits", Process: wordSize, Complete: wordSizeComplete},
		{Name: "signed", Min: 3, Help: "Show decimal as two's complement", Process: signed},
		{Name: "unsigned", Min: 3, Help: "Show decimal as unsigned", Process: unsigned},

		// Memory.
		{Name: "sto", Help: "Store X in register n", Process: store, Complete: registerComplete},
		{Name: "rcl", Help: "Recall register n", Process: recall, Complete: registerComplete},

		// Display.
		{Name: "show", Min: 2, Help: "Show stack and flags", Process: show},
		{Name: "regs", Min: 3, Help: "Show registers", Process: regs},
		{Name: "dump", Min: 2, Help: "Dump calculator state", Process: dump},
		{Name: "rom", Help: "Show ROM word at hex address", Process: romWord},
		{Name: "help", Alias: []string{"h", "?"}, Min: 4, Help: "Show commands", Process: help},
		{Name: "quit", Alias: []string{"q", "exit"}, Min: 4, Help: "Leave calculator", Process: quit},
	}
}

// Command that can't fail.
func op(fn func(*engine.Engine)) func(*cmdLine, *core.Core) (bool, error) {
	return func(_ *cmdLine, core *core.Core) (bool, error) {
		fn(core.Engine)
		return false, nil
	}
}

// Command that may refuse.
func opErr(fn func(*engine.Engine) error) func(*cmdLine, *core.Core) (bool, error) {
	return func(_ *cmdLine, core *core.Core) (bool, error) {
		return false, fn(core.Engine)
	}
}

// Shift with optional count, default 1.
func shift(kind engine.ShiftKind) func(*cmdLine, *core.Core) (bool, error) {
	return func(line *cmdLine, core *core.Core) (bool, error) {
		count := line.getOptionalNumber(1)
		core.Engine.Shift(kind, uint(count))
		return false, nil
	}
}

// Shift with count taken from Y.
func shiftBy(kind engine.ShiftKind) func(*cmdLine, *core.Core) (bool, error) {
	return func(_ *cmdLine, core *core.Core) (bool, error) {
		core.Engine.ShiftBy(kind)
		return false, nil
	}
}

func setBase(base engine.Base) func(*cmdLine, *core.Core) (bool, error) {
	return func(_ *cmdLine, core *core.Core) (bool, error) {
		return false, core.Engine.SetBase(base)
	}
}

// Handle ws command.
func wordSize(line *cmdLine, core *core.Core) (bool, error) {
	size, err := line.getNumber()
	if err != nil {
		return false, fmt.Errorf("ws: %w", err)
	}
	return false, core.Engine.SetWordSize(size)
}

func signed(_ *cmdLine, core *core.Core) (bool, error) {
	core.Signed = true
	return false, nil
}

func unsigned(_ *cmdLine, core *core.Core) (bool, error) {
	core.Signed = false
	return false, nil
}

// Handle sto command.
func store(line *cmdLine, core *core.Core) (bool, error) {
	index, err := line.getNumber()
	if err != nil {
		return false, fmt.Errorf("sto: %w", err)
	}
	return false, core.Engine.Store(index)
}

// Handle rcl command.
func recall(line *cmdLine, core *core.Core) (bool, error) {
	index, err := line.getNumber()
	if err != nil {
		return false, fmt.Errorf("rcl: %w", err)
	}
	return false, core.Engine.Recall(index)
}

func show(_ *cmdLine, core *core.Core) (bool, error) {
	fmt.Fprintln(core.Out, core.Display())
	return false, nil
}

func regs(_ *cmdLine, core *core.Core) (bool, error) {
	fmt.Fprint(core.Out, core.Registers())
	return false, nil
}

// Pretty print engine state.
func dump(_ *cmdLine, core *core.Core) (bool, error) {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	_, err := printer.Fprintln(core.Out, core.Engine.Snapshot())
	return false, err
}

// Handle rom command.
func romWord(line *cmdLine, core *core.Core) (bool, error) {
	addr, err := line.getHex()
	if err != nil {
		return false, fmt.Errorf("rom: %w", err)
	}
	if addr > 0xffff {
		return false, errors.New("rom address too large")
	}
	fmt.Fprintf(core.Out, "%04X: %04X\n", addr, core.ROM.Read(uint16(addr)))
	return false, nil
}

func help(_ *cmdLine, core *core.Core) (bool, error) {
	for _, c := range cmdList {
		name := c.Name
		if len(c.Alias) != 0 {
			name += " (" + strings.Join(c.Alias, " ") + ")"
		}
		fmt.Fprintf(core.Out, "%-16s %s\n", name, c.Help)
	}
	fmt.Fprintln(core.Out, "Numbers are entered in the current base, a leading - negates.")
	return false, nil
}

func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	return true, nil
}

// Register numbers for sto and rcl.
func registerComplete(_ *cmdLine) []string {
	list := make([]string, memory.Size)
	for i := range list {
		list[i] = strconv.Itoa(i)
	}
	return list
}

// Common word sizes.
func wordSizeComplete(_ *cmdLine) []string {
	return []string{"4", "8", "16", "32", "64", "128"}
}
