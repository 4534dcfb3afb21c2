/*
 * HP16C - Debug options configuration
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
	"errors"
	"strings"

	"github.com/rcornwell/hp16c/command/parser"
	config "github.com/rcornwell/hp16c/config/configparser"
	"github.com/rcornwell/hp16c/emu/rom"
)

// register debug option on initialize.
func init() {
	config.RegisterModel("DEBUG", setDebug)
}

// Set debug flags for a module.
func setDebug(module string, options []config.Option) error {
	switch strings.ToUpper(module) {
	case "COMMAND":
		return applyDebug(parser.Debug, options)
	case "ROM":
		return applyDebug(rom.Debug, options)
	}
	return errors.New("debug option invalid: " + module)
}

// Pass each option name and comma value to debug function.
func applyDebug(debug func(string) error, options []config.Option) error {
	if len(options) == 0 {
		return errors.New("debug requires at least one option")
	}
	for _, opt := range options {
		err := debug(strings.ToUpper(opt.Name))
		if err != nil {
			return err
		}
		for _, value := range opt.Value {
			err = debug(strings.ToUpper(*value))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
