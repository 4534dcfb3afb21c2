/*
 * HP16C - Command completion
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
	"slices"
	"strings"
	"unicode"
)

// Called to complete a command line, during line editing. Only the last
// word is completed, the rest of the line is returned unchanged.
func CompleteCmd(commandLine string) []string {
	start := len(commandLine)
	for start > 0 && !unicode.IsSpace(rune(commandLine[start-1])) {
		start--
	}
	leading := commandLine[:start]
	word := strings.ToLower(commandLine[start:])

	// See if previous command wants an argument.
	var candidates []string
	fields := strings.Fields(leading)
	if len(fields) != 0 {
		match, ok := exactCommand(strings.ToLower(fields[len(fields)-1]))
		if ok && match.Complete != nil {
			line := cmdLine{line: commandLine, pos: start}
			candidates = match.Complete(&line)
		}
	}

	if candidates == nil {
		for _, m := range cmdList {
			candidates = append(candidates, m.Name)
			candidates = append(candidates, m.Alias...)
		}
		slices.Sort(candidates)
	}

	var matches []string
	for _, name := range candidates {
		if strings.HasPrefix(name, word) {
			matches = append(matches, leading+name)
		}
	}
	return matches
}
