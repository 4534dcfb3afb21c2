/*
 * HP16C - Calculator session
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

package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	config "github.com/rcornwell/hp16c/config/configparser"
	"github.com/rcornwell/hp16c/emu/engine"
	"github.com/rcornwell/hp16c/emu/rom"
	"github.com/rcornwell/hp16c/util/radix"
)

// Settings used to create a session.
type Settings struct {
	WordSize    int         // Bits in a word, 1 to 128.
	Base        engine.Base // Display and entry base.
	Signed      bool        // Show decimal values as two's complement.
	ROMFile     string      // Optional ROM image.
	HistoryFile string      // Line editor history.
}

// Defaults are modified by the configuration file and command flags.
var Defaults = Settings{
	WordSize: engine.DefaultWordSize,
	Base:     engine.DefaultBase,
}

type Core struct {
	Engine      *engine.Engine
	ROM         *rom.ROM
	Out         io.Writer // Where command output goes.
	Signed      bool
	HistoryFile string
}

// register configuration options on initialize.
func init() {
	config.RegisterOption("WORDSIZE", setWordSize)
	config.RegisterOption("BASE", setBase)
	config.RegisterSwitch("SIGNED", setSigned)
	config.RegisterOption("ROM", setROM)
	config.RegisterOption("HISTORY", setHistory)
}

func setWordSize(value string, _ []config.Option) error {
	size, err := strconv.Atoi(value)
	if err != nil || size < engine.MinWordSize || size > engine.MaxWordSize {
		return errors.New("word size must be 1 to 128: " + value)
	}
	Defaults.WordSize = size
	return nil
}

func setBase(value string, _ []config.Option) error {
	base, err := ParseBase(value)
	if err != nil {
		return err
	}
	Defaults.Base = base
	return nil
}

func setSigned(_ string, _ []config.Option) error {
	Defaults.Signed = true
	return nil
}

func setROM(value string, _ []config.Option) error {
	Defaults.ROMFile = value
	return nil
}

func setHistory(value string, _ []config.Option) error {
	Defaults.HistoryFile = value
	return nil
}

// Convert base name or number to base.
func ParseBase(name string) (engine.Base, error) {
	switch strings.ToLower(name) {
	case "bin", "binary", "2":
		return engine.Binary, nil
	case "oct", "octal", "8":
		return engine.Octal, nil
	case "dec", "decimal", "10":
		return engine.Decimal, nil
	case "hex", "hexadecimal", "16":
		return engine.Hexadecimal, nil
	}
	return 0, errors.New("base must be bin, oct, dec or hex: " + name)
}

// Create a new session.
func New(settings Settings, out io.Writer) (*Core, error) {
	eng := engine.New()
	if err := eng.SetWordSize(settings.WordSize); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if err := eng.SetBase(settings.Base); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	image := rom.New()
	if settings.ROMFile != "" {
		if err := image.LoadFile(settings.ROMFile); err != nil {
			slog.Warn("Unable to load ROM: " + err.Error())
		} else {
			slog.Info(fmt.Sprintf("Loaded %d ROM words from %s", image.Size(), settings.ROMFile))
		}
	}

	return &Core{
		Engine:      eng,
		ROM:         image,
		Out:         out,
		Signed:      settings.Signed,
		HistoryFile: settings.HistoryFile,
	}, nil
}

// Render a value in the current base.
func (core *Core) Format(value engine.Word) string {
	base := core.Engine.Base()
	size := core.Engine.WordSize()
	if base == engine.Decimal {
		return radix.Format(value, int(base), size, core.Signed)
	}
	digits := radix.FormatWidth(value, int(base), size)
	if base == engine.Binary {
		return radix.Group(digits, 4)
	}
	return digits
}

// Return stack display followed by status line.
func (core *Core) Display() string {
	var str strings.Builder
	stack := core.Engine.Stack()
	names := []string{"X", "Y", "Z", "T"}
	for i := len(stack) - 1; i >= 0; i-- {
		str.WriteString(names[i] + ": " + core.Format(stack[i]) + "\n")
	}
	str.WriteString(core.Status())
	return str.String()
}

// Return status line, base, word size and flags.
func (core *Core) Status() string {
	status := fmt.Sprintf("%s WS:%d C:%d O:%d", core.Engine.Base(), core.Engine.WordSize(),
		flag(core.Engine.Carry()), flag(core.Engine.Overflow()))
	if core.Signed {
		status += " SIGNED"
	}
	return status
}

// Return display of memory registers.
func (core *Core) Registers() string {
	var str strings.Builder
	for i := range engine.NumRegisters {
		value, _ := core.Engine.Register(i)
		str.WriteString(fmt.Sprintf("R%-2d: %s\n", i, core.Format(value)))
	}
	return str.String()
}

func flag(set bool) int {
	if set {
		return 1
	}
	return 0
}
