/*
 * HP16C - Console reader tests
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

package reader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rcornwell/hp16c/emu/core"
	"github.com/rcornwell/hp16c/emu/engine"
)

func newCore(t *testing.T) (*core.Core, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	c, err := core.New(core.Settings{WordSize: 8, Base: engine.Hexadecimal}, out)
	if err != nil {
		t.Fatalf("Unable to create core: %v", err)
	}
	return c, out
}

func TestBatch(t *testing.T) {
	c, out := newCore(t)
	err := BatchReader(strings.NewReader("ff enter aa and\n"), c)
	if err != nil {
		t.Fatalf("BatchReader failed: %v", err)
	}
	want := "T: 00\nZ: 00\nY: 00\nX: AA\nHEX WS:8 C:0 O:0\n"
	if out.String() != want {
		t.Errorf("Batch output got: %q wanted: %q", out.String(), want)
	}
}

func TestBatchError(t *testing.T) {
	c, out := newCore(t)
	err := BatchReader(strings.NewReader("5 0 /\n1 +\n"), c)
	if err != nil {
		t.Fatalf("BatchReader failed: %v", err)
	}
	if !strings.Contains(out.String(), "Error: ") {
		t.Errorf("Batch output missing error: %q", out.String())
	}
	if x := c.Engine.X(); !x.Equals64(1) {
		t.Errorf("Processing did not continue after error X got: %s wanted: 1", x)
	}
}

func TestBatchQuit(t *testing.T) {
	c, out := newCore(t)
	err := BatchReader(strings.NewReader("1\nquit\n2\n"), c)
	if err != nil {
		t.Fatalf("BatchReader failed: %v", err)
	}
	if x := c.Engine.X(); !x.Equals64(1) {
		t.Errorf("Line after quit processed X got: %s wanted: 1", x)
	}
	if strings.Count(out.String(), "X: ") != 1 {
		t.Errorf("Display count wrong: %q", out.String())
	}
}
