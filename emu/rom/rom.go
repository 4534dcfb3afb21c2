/*
 * HP16C - ROM image loader
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

// Package rom holds an image of the calculator firmware. The image is
// informational only, no arithmetic depends on it.
package rom

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rcornwell/hp16c/util/debug"
)

const (
	// Debug options.
	debugLoad = 1 << iota
)

var debugOption = map[string]int{
	"LOAD": debugLoad,
}

var debugMsk int

// Image of ROM words indexed by address.
type ROM struct {
	data    map[uint16]uint16
	skipped int // Lines that could not be parsed.
}

func New() *ROM {
	return &ROM{data: map[uint16]uint16{}}
}

// Enable debug options.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("rom debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// Load ROM from file.
func (rom *ROM) LoadFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return rom.Load(file)
}

// Load ROM image. Each line is address:value in hex, # starts a comment.
// Lines that do not parse are skipped.
func (rom *ROM) Load(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		addrStr, valStr, ok := strings.Cut(line, ":")
		if !ok {
			rom.skip(lineNumber, line)
			continue
		}
		addr, err := strconv.ParseUint(strings.TrimSpace(addrStr), 16, 16)
		if err != nil {
			rom.skip(lineNumber, line)
			continue
		}
		value, err := strconv.ParseUint(strings.TrimSpace(valStr), 16, 16)
		if err != nil {
			rom.skip(lineNumber, line)
			continue
		}
		rom.data[uint16(addr)] = uint16(value)
	}
	debug.Debugf("ROM", debugMsk, debugLoad, "loaded %d words, skipped %d lines", len(rom.data), rom.skipped)
	return scanner.Err()
}

func (rom *ROM) skip(lineNumber int, line string) {
	rom.skipped++
	debug.Debugf("ROM", debugMsk, debugLoad, "line %d invalid: %s", lineNumber, line)
}

// Return word at address, 0 if not loaded.
func (rom *ROM) Read(addr uint16) uint16 {
	return rom.data[addr]
}

// Number of words loaded.
func (rom *ROM) Size() int {
	return len(rom.data)
}

// Number of lines skipped while loading.
func (rom *ROM) Skipped() int {
	return rom.skipped
}
