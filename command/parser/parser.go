/*
 * HP16C - Command line parser
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
	"log/slog"
	"math/big"
	"strings"
	"unicode"

	core "github.com/rcornwell/hp16c/emu/core"
	"github.com/rcornwell/hp16c/emu/engine"
	"github.com/rcornwell/hp16c/util/debug"
	"github.com/rcornwell/hp16c/util/radix"
	"lukechampine.com/uint128"
)

const (
	// Debug options.
	debugCmd = 1 << iota
	debugStack
)

var debugOption = map[string]int{
	"CMD":   debugCmd,
	"STACK": debugStack,
}

var debugMsk int

type cmd struct {
	Name     string   // Command name.
	Alias    []string // Other names, exact match only.
	Min      int      // Minimum match size, 0 exact only.
	Help     string   // One line description.
	Process  func(*cmdLine, *core.Core) (bool, error)
	Complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var errMissing = errors.New("missing argument")

// Enable debug options.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("command debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// Execute the command line given. Processing stops at the first error,
// anything done before it stays done.
func ProcessCommand(commandLine string, core *core.Core) (bool, error) {
	line := cmdLine{line: commandLine}
	for {
		token := line.getToken()
		if token == "" {
			return false, nil
		}
		debug.Debugf("CMD", debugMsk, debugCmd, "%s", token)
		quit, err := line.process(token, core)
		if debugMsk&debugStack != 0 {
			stack := core.Engine.Stack()
			debug.Debugf("STACK", debugMsk, debugStack, "X=%s Y=%s Z=%s T=%s",
				core.Format(stack[0]), core.Format(stack[1]), core.Format(stack[2]), core.Format(stack[3]))
		}
		if err != nil || quit {
			return quit, err
		}
	}
}

// Run one token. Exact names win, then numbers, then abbreviations.
func (line *cmdLine) process(token string, core *core.Core) (bool, error) {
	if match, ok := exactCommand(strings.ToLower(token)); ok {
		slog.Debug("Command " + match.Name)
		return match.Process(line, core)
	}

	value, ok, err := parseLiteral(token, core.Engine.Base())
	if err != nil {
		return false, err
	}
	if ok {
		core.Engine.Push(value)
		return false, nil
	}

	match := matchList(strings.ToLower(token))
	if len(match) == 0 {
		return false, errors.New("unknown command or invalid number: " + token)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + token)
	}

	slog.Debug("Command " + match[0].Name)
	return match[0].Process(line, core)
}

// Find command by full name or alias.
func exactCommand(command string) (cmd, bool) {
	for _, m := range cmdList {
		if m.Name == command {
			return m, true
		}
		for _, alias := range m.Alias {
			if alias == command {
				return m, true
			}
		}
	}
	return cmd{}, false
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if match.Min == 0 || len(command) < match.Min {
		return false
	}
	return strings.HasPrefix(match.Name, command)
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// Try and match one command.
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Convert token to a number in base. Returns false if token is not a
// number, a leading - gives the two's complement.
func parseLiteral(token string, base engine.Base) (engine.Word, bool, error) {
	negative := false
	if token[0] == '-' {
		negative = true
		token = token[1:]
	}
	if token == "" {
		return uint128.Zero, false, nil
	}

	value := new(big.Int)
	radixBig := big.NewInt(int64(base))
	for i := range len(token) {
		digit := radix.Digit(int(base), token[i])
		if digit < 0 {
			return uint128.Zero, false, nil
		}
		value.Mul(value, radixBig)
		value.Add(value, big.NewInt(int64(digit)))
	}
	if value.BitLen() > engine.MaxWordSize {
		return uint128.Zero, false, errors.New("number exceeds 128 bits: " + token)
	}

	result := uint128.FromBig(value)
	if negative {
		result = uint128.Zero.SubWrap(result)
	}
	return result, true, nil
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	return line.line[line.pos] == '#'
}

// Return next character and advance, 0 at end of line.
func (line *cmdLine) getCurrent() byte {
	if line.pos >= len(line.line) {
		return 0
	}
	by := line.line[line.pos]
	line.pos++
	return by
}

// Return next space separated token, empty at end of line.
func (line *cmdLine) getToken() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	start := line.pos
	for line.pos < len(line.line) && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Get decimal number.
func (line *cmdLine) getNumber() (int, error) {
	line.skipSpace()

	// Check if end of line.
	if line.isEOL() {
		return 0, errMissing
	}

	pos := line.pos
	value := 0
	by := line.getCurrent()
	for by != 0 && !unicode.IsSpace(rune(by)) {
		if !unicode.IsDigit(rune(by)) || value > 1<<16 {
			line.pos = pos
			return 0, errors.New("not a number")
		}
		value = (value * 10) + int(by-'0')
		by = line.getCurrent()
	}

	return value, nil
}

// Get optional decimal number, line is not advanced if there is none.
func (line *cmdLine) getOptionalNumber(def int) int {
	pos := line.pos
	value, err := line.getNumber()
	if err != nil {
		line.pos = pos
		return def
	}
	return value
}

// Get hexadecimal number.
func (line *cmdLine) getHex() (uint32, error) {
	line.skipSpace()

	// Check if end of line.
	if line.isEOL() {
		return 0, errMissing
	}

	pos := line.pos
	value := uint32(0)
	by := line.getCurrent()
	for by != 0 && !unicode.IsSpace(rune(by)) {
		digit := radix.Digit(16, by)
		if digit < 0 || value > 0xffff {
			line.pos = pos
			return 0, errors.New("not a hexadecimal number")
		}
		value = (value << 4) + uint32(digit)
		by = line.getCurrent()
	}

	return value, nil
}
