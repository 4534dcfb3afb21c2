/*
 * HP16C - Wrapper for slog tests
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

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestHandler(debug bool) (*LogHandler, *bytes.Buffer, *bytes.Buffer) {
	file := &bytes.Buffer{}
	console := &bytes.Buffer{}
	h := NewHandler(file, nil, debug)
	h.console = console
	return h, file, console
}

func TestLevels(t *testing.T) {
	h, file, console := newTestHandler(false)
	log := slog.New(h)

	log.Debug("hidden")
	log.Info("started")
	log.Warn("no rom")

	if strings.Contains(file.String(), "hidden") {
		t.Errorf("Debug message logged: %q", file.String())
	}
	if !strings.Contains(file.String(), "INFO: started") {
		t.Errorf("Info message missing: %q", file.String())
	}
	if strings.Contains(console.String(), "started") {
		t.Errorf("Info message sent to console: %q", console.String())
	}
	if !strings.Contains(console.String(), "WARN: no rom") {
		t.Errorf("Warning missing from console: %q", console.String())
	}
}

func TestDebug(t *testing.T) {
	h, file, console := newTestHandler(true)
	log := slog.New(h)

	log.Debug("Command enter")
	if !strings.Contains(file.String(), "DEBUG: Command enter") {
		t.Errorf("Debug message missing from file: %q", file.String())
	}
	if !strings.Contains(console.String(), "DEBUG: Command enter") {
		t.Errorf("Debug message missing from console: %q", console.String())
	}

	h.SetDebug(false)
	log.Debug("quiet")
	if strings.Contains(file.String(), "quiet") {
		t.Errorf("Debug message logged after debug off")
	}
}

func TestAttrs(t *testing.T) {
	h, file, _ := newTestHandler(false)
	log := slog.New(h).With("file", "16c.obj").WithGroup("rom")

	log.Info("loaded", "words", 2)
	line := file.String()
	if !strings.Contains(line, "INFO: loaded file=16c.obj rom.words=2") {
		t.Errorf("Attributes not logged got: %q", line)
	}
}
