/*
 * HP16C - Debug options configuration tests
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

package debugconfig

import (
	"strings"
	"testing"

	config "github.com/rcornwell/hp16c/config/configparser"
)

func TestDebugConfig(t *testing.T) {
	err := config.LoadConfig(strings.NewReader("DEBUG COMMAND cmd,stack\nDEBUG rom load\n"))
	if err != nil {
		t.Errorf("Debug options rejected: %v", err)
	}

	err = config.LoadConfig(strings.NewReader("DEBUG COMMAND bogus\n"))
	if err == nil {
		t.Errorf("Invalid command debug option accepted")
	}

	err = config.LoadConfig(strings.NewReader("DEBUG ENGINE cmd\n"))
	if err == nil {
		t.Errorf("Invalid debug module accepted")
	}

	err = config.LoadConfig(strings.NewReader("DEBUG ROM\n"))
	if err == nil {
		t.Errorf("Debug with no options accepted")
	}
}
