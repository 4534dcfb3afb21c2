/*
 * HP16C - Command line parser tests
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
	"bytes"
	"errors"
	"strings"
	"testing"

	core "github.com/rcornwell/hp16c/emu/core"
	"github.com/rcornwell/hp16c/emu/engine"
	"github.com/rcornwell/hp16c/util/debug"
)

func newCore(t *testing.T) (*core.Core, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	c, err := core.New(core.Settings{WordSize: 64, Base: engine.Decimal}, out)
	if err != nil {
		t.Fatalf("Unable to create core: %v", err)
	}
	return c, out
}

func run(t *testing.T, c *core.Core, line string) {
	t.Helper()
	quit, err := ProcessCommand(line, c)
	if err != nil {
		t.Fatalf("Command %q failed: %v", line, err)
	}
	if quit {
		t.Fatalf("Command %q quit", line)
	}
}

func checkX(t *testing.T, c *core.Core, name string, want uint64) {
	t.Helper()
	if x := c.Engine.X(); !x.Equals64(want) {
		t.Errorf("%s X got: %x wanted: %x", name, x, want)
	}
}

func TestEnterAdd(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "10 enter 5 +")
	checkX(t, c, "10 enter 5 +", 15)

	run(t, c, "clear 5 enter 3 -")
	checkX(t, c, "5 enter 3 -", 2)

	run(t, c, "6 x")
	checkX(t, c, "2 6 x", 12)
}

func TestHexAnd(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "hex ff enter aa and")
	checkX(t, c, "ff and aa", 0xaa)
	if c.Engine.Base() != engine.Hexadecimal {
		t.Errorf("Base got: %s wanted: HEX", c.Engine.Base())
	}

	// Hex digits are numbers unless they spell a command.
	run(t, c, "add")
	checkX(t, c, "add", 0xadd)
	run(t, c, "dec")
	if c.Engine.Base() != engine.Decimal {
		t.Errorf("Base got: %s wanted: DEC", c.Engine.Base())
	}
}

func TestWordSizeMask(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "ws 8 300")
	checkX(t, c, "ws 8 300", 44)
	if c.Engine.WordSize() != 8 {
		t.Errorf("Word size got: %d wanted: 8", c.Engine.WordSize())
	}

	_, err := ProcessCommand("ws 0", c)
	if !errors.Is(err, engine.InvalidWordSize) {
		t.Errorf("ws 0 got: %v wanted: %v", err, engine.InvalidWordSize)
	}
	_, err = ProcessCommand("ws", c)
	if !errors.Is(err, errMissing) {
		t.Errorf("ws got: %v wanted: %v", err, errMissing)
	}
}

func TestCarryOverflow(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "ws 4 7 enter 1 +")
	checkX(t, c, "7 + 1", 8)
	if c.Engine.Carry() || !c.Engine.Overflow() {
		t.Errorf("Flags got: C=%v O=%v wanted: C=false O=true", c.Engine.Carry(), c.Engine.Overflow())
	}
}

func TestDivideByZero(t *testing.T) {
	c, _ := newCore(t)
	_, err := ProcessCommand("5 0 / 7", c)
	if !errors.Is(err, engine.DivideByZero) {
		t.Errorf("Divide got: %v wanted: %v", err, engine.DivideByZero)
	}
	checkX(t, c, "after divide", 0)
	if y := c.Engine.Y(); !y.Equals64(5) {
		t.Errorf("Y got: %x wanted: 5", y)
	}
}

func TestLiterals(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "bin 101")
	checkX(t, c, "bin 101", 5)

	_, err := ProcessCommand("102", c)
	if err == nil {
		t.Errorf("Binary 102 accepted")
	}
	checkX(t, c, "bin 102", 5)

	run(t, c, "oct 17")
	checkX(t, c, "oct 17", 15)

	run(t, c, "dec ws 8 -1")
	checkX(t, c, "ws 8 -1", 0xff)

	run(t, c, "ws 128 hex")
	_, err = ProcessCommand(strings.Repeat("f", 33), c)
	if err == nil || !strings.Contains(err.Error(), "128 bits") {
		t.Errorf("Oversize literal got: %v", err)
	}
	run(t, c, strings.Repeat("f", 32))
	if x := c.Engine.X(); x.Hi != ^uint64(0) || x.Lo != ^uint64(0) {
		t.Errorf("128 bit literal got: %x", x)
	}
}

func TestAbbreviation(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "sig")
	if !c.Signed {
		t.Errorf("sig did not set signed")
	}
	run(t, c, "unsig")
	if c.Signed {
		t.Errorf("unsig did not clear signed")
	}

	run(t, c, "1 2 dr")
	checkX(t, c, "1 2 dr", 1)

	run(t, c, "3 sw")
	checkX(t, c, "1 3 sw", 1)

	_, err := ProcessCommand("s", c)
	if err == nil {
		t.Errorf("Single letter s accepted")
	}
	_, err = ProcessCommand("dropped", c)
	if err == nil {
		t.Errorf("Word longer than command accepted")
	}
}

func TestShiftCommands(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "ws 8 1 sl 3")
	checkX(t, c, "1 sl 3", 8)
	run(t, c, "sl")
	checkX(t, c, "8 sl", 16)
	run(t, c, "sr 4")
	checkX(t, c, "16 sr 4", 1)
	run(t, c, "rr")
	checkX(t, c, "1 rr", 0x80)
	if !c.Engine.Carry() {
		t.Errorf("Rotate did not set carry")
	}
	run(t, c, "asr 2")
	checkX(t, c, "80 asr 2", 0xe0)

	run(t, c, "clear 3 enter 1 sln")
	checkX(t, c, "1 sln 3", 8)
	if y := c.Engine.Y(); !y.IsZero() {
		t.Errorf("sln did not drop stack Y got: %x", y)
	}
}

func TestMemoryCommands(t *testing.T) {
	c, _ := newCore(t)
	run(t, c, "42 sto 3 clx rcl 3")
	checkX(t, c, "rcl 3", 42)

	_, err := ProcessCommand("sto 16", c)
	if !errors.Is(err, engine.InvalidMemoryIndex) {
		t.Errorf("sto 16 got: %v wanted: %v", err, engine.InvalidMemoryIndex)
	}
	_, err = ProcessCommand("rcl x", c)
	if err == nil {
		t.Errorf("rcl x accepted")
	}
	_, err = ProcessCommand("sto", c)
	if !errors.Is(err, errMissing) {
		t.Errorf("sto got: %v wanted: %v", err, errMissing)
	}
}

func TestQuitComment(t *testing.T) {
	c, _ := newCore(t)
	quit, err := ProcessCommand("1 quit 2", c)
	if err != nil || !quit {
		t.Errorf("quit got: %v %v wanted: true", quit, err)
	}
	checkX(t, c, "1 quit 2", 1)

	quit, _ = ProcessCommand("exit", c)
	if !quit {
		t.Errorf("exit did not quit")
	}

	run(t, c, "clear 1 2 + # 5")
	checkX(t, c, "comment", 3)
	run(t, c, "   ")
}

func TestOutput(t *testing.T) {
	c, out := newCore(t)
	run(t, c, "show")
	if out.String() != c.Display()+"\n" {
		t.Errorf("show got: %q wanted: %q", out.String(), c.Display()+"\n")
	}

	out.Reset()
	run(t, c, "regs")
	if !strings.Contains(out.String(), "R15:") {
		t.Errorf("regs output missing R15: %q", out.String())
	}

	out.Reset()
	run(t, c, "dump")
	if !strings.Contains(out.String(), "WordSize") {
		t.Errorf("dump output missing WordSize: %q", out.String())
	}

	out.Reset()
	run(t, c, "?")
	if !strings.Contains(out.String(), "enter") || !strings.Contains(out.String(), "x<>y") {
		t.Errorf("help output incomplete: %q", out.String())
	}

	out.Reset()
	run(t, c, "rom 1f")
	if out.String() != "001F: 0000\n" {
		t.Errorf("rom got: %q wanted: %q", out.String(), "001F: 0000\n")
	}
	_, err := ProcessCommand("rom 10000", c)
	if err == nil {
		t.Errorf("rom accepted address 10000")
	}
}

func TestComplete(t *testing.T) {
	got := CompleteCmd("dr")
	if len(got) != 1 || got[0] != "drop" {
		t.Errorf("Complete dr got: %v wanted: [drop]", got)
	}

	got = CompleteCmd("he")
	if len(got) != 2 || got[0] != "help" || got[1] != "hex" {
		t.Errorf("Complete he got: %v wanted: [help hex]", got)
	}

	got = CompleteCmd("1 enter sto 1")
	if len(got) != 7 || got[0] != "1 enter sto 1" || got[6] != "1 enter sto 15" {
		t.Errorf("Complete sto 1 got: %v", got)
	}

	got = CompleteCmd("ws 1")
	if len(got) != 2 || got[0] != "ws 16" || got[1] != "ws 128" {
		t.Errorf("Complete ws 1 got: %v wanted: [ws 16 ws 128]", got)
	}
}

func TestDebug(t *testing.T) {
	if err := Debug("BOGUS"); err == nil {
		t.Errorf("Invalid debug option accepted")
	}

	var trace bytes.Buffer
	debug.SetOutput(&trace)
	defer func() {
		debug.SetOutput(nil)
		debugMsk = 0
	}()

	if err := Debug("CMD"); err != nil {
		t.Fatalf("Debug CMD failed: %v", err)
	}
	if err := Debug("STACK"); err != nil {
		t.Fatalf("Debug STACK failed: %v", err)
	}
	c, _ := newCore(t)
	run(t, c, "1 2 +")
	if !strings.Contains(trace.String(), "CMD: +") {
		t.Errorf("Trace missing command: %q", trace.String())
	}
	if !strings.Contains(trace.String(), "STACK: X=3 Y=0") {
		t.Errorf("Trace missing stack: %q", trace.String())
	}
}
