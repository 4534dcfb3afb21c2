/*
 * HP16C - Console reader
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/peterh/liner"
	"github.com/rcornwell/hp16c/command/parser"
	"github.com/rcornwell/hp16c/emu/core"
	"golang.org/x/term"
)

const prompt = "16C> "

// Read commands from terminal with line editing, or from a pipe.
func Run(core *core.Core) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		ConsoleReader(core)
		return nil
	}
	return BatchReader(os.Stdin, core)
}

// Execute one line and show the result.
func execute(command string, core *core.Core) bool {
	quit, err := parser.ProcessCommand(command, core)
	if err != nil {
		fmt.Fprintln(core.Out, "Error: "+err.Error())
	}
	if quit {
		return true
	}
	fmt.Fprintln(core.Out, core.Display())
	return false
}

func ConsoleReader(core *core.Core) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		return parser.CompleteCmd(line)
	})

	loadHistory(line, core.HistoryFile)
	defer saveHistory(line, core.HistoryFile)

	fmt.Fprintln(core.Out, core.Display())
	for {
		command, err := line.Prompt(prompt)
		if err == nil {
			line.AppendHistory(command)
			if execute(command, core) {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}

// Read commands from non terminal input until end of file or quit.
func BatchReader(in io.Reader, core *core.Core) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if execute(scanner.Text(), core) {
			return nil
		}
	}
	return scanner.Err()
}

func loadHistory(line *liner.State, name string) {
	if name == "" {
		return
	}
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	if _, err := line.ReadHistory(file); err != nil {
		slog.Warn("Unable to read history: " + err.Error())
	}
}

func saveHistory(line *liner.State, name string) {
	if name == "" {
		return
	}
	file, err := os.Create(name)
	if err != nil {
		slog.Warn("Unable to save history: " + err.Error())
		return
	}
	defer file.Close()
	if _, err := line.WriteHistory(file); err != nil {
		slog.Warn("Unable to save history: " + err.Error())
	}
}
