/*
 * HP16C - Configuration file parser
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Value of option.
}

// Current option line being parsed.
type optionLine struct {
	line   string // Current option line.
	pos    int    // Current position in line.
	number int    // Line number in file.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <name> [<whitespace> <quoteopt>] *(<whitespace> <option>)
 * <name> := <letter> *(<letter> | <number>)
 * <option> ::= <string> ['=' <quoteopt>] *(<commaopt>)
 * <commaopt> ::= ',' *(<whitespace>) <string>
 * <quoteopt> ::= <word> | '"' *(<any> | '""') '"'
 * <string> ::= *(<letter> | <number>)
 * <word> ::= *(<any but whitespace or ','>)
 *
 * Examples:
 *   WORDSIZE 16
 *   BASE hex
 *   SIGNED
 *   ROM "16c.obj"
 *   DEBUG COMMAND CMD,STACK
 */

const (
	TypeOption  = 1 + iota // Accepts a single value.
	TypeOptions            // Accepts a value and a list of options.
	TypeSwitch             // Option only used to set a flag.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var models = map[string]optionDef{}

// Return type of option or 0 if not registered.
func getModel(mod string) int {
	model, ok := models[mod]
	if !ok {
		return 0
	}
	return model.ty
}

func register(mod string, ty int, fn func(string, []Option) error) {
	mod = strings.ToUpper(mod)
	slog.Debug("Registering configuration option: " + mod)
	models[mod] = optionDef{create: fn, ty: ty}
}

// Register should be called from init functions.
func RegisterModel(mod string, fn func(string, []Option) error) {
	register(mod, TypeOptions, fn)
}

// Register should be called from init functions.
func RegisterSwitch(mod string, fn func(string, []Option) error) {
	register(mod, TypeSwitch, fn)
}

// Register should be called from init functions.
func RegisterOption(mod string, fn func(string, []Option) error) {
	register(mod, TypeOption, fn)
}

// Call create function for option of given type.
func createModel(mod string, ty int, value string, options []Option) error {
	mod = strings.ToUpper(mod)
	model, ok := models[mod]
	if !ok {
		return errors.New("unknown option: " + mod)
	}
	if model.ty != ty {
		return errors.New("option used with wrong arguments: " + mod)
	}
	return model.create(value, options)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Load configuration from reader.
func LoadConfig(in io.Reader) error {
	reader := bufio.NewReader(in)
	lineNumber := 0
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		line.number = lineNumber
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	model := line.parseModel()
	if model == "" {
		return nil
	}
	switch getModel(model) {
	case TypeOption:
		value, ok := line.parseFirst()
		line.skipSpace()
		if !ok || !line.isEOL() {
			return fmt.Errorf("option: %s must be followed by one value, line: %d", model, line.number)
		}
		return createModel(model, TypeOption, value, nil)

	case TypeOptions:
		value, ok := line.parseFirst()
		if !ok {
			return fmt.Errorf("option: %s not followed by value, line: %d", model, line.number)
		}
		options, err := line.parseOptions()
		if err != nil {
			return err
		}
		return createModel(model, TypeOptions, value, options)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by options, line: %d", model, line.number)
		}
		return createModel(model, TypeSwitch, "", nil)
	}
	return fmt.Errorf("no option: %s registered, line: %d", model, line.number)
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
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
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	return line.line[line.pos] == '#'
}

// Return next letter or digit in line. 0 if EOL or not alphanumeric.
func (line *optionLine) getNext(inQuote bool) byte {
	line.pos++
	if line.pos >= len(line.line) {
		return 0
	}
	by := line.line[line.pos]
	if inQuote {
		if by == '\n' || by == '\r' {
			return 0
		}
		return by
	}
	if line.isEOL() {
		return 0
	}
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
		return by
	}
	return 0
}

// Parse option name.
func (line *optionLine) parseModel() string {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return ""
	}

	model := ""

	// Get model name
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			model += string([]byte{by})
			line.pos++
			continue
		}
		break
	}

	return strings.ToUpper(model)
}

// Parse first option parameter, this may be quoted.
func (line *optionLine) parseFirst() (string, bool) {
	line.skipSpace()
	if line.isEOL() {
		return "", false
	}
	return line.parseQuoteString()
}

// Parse string that is "string" or just a word, current position is
// first character of string.
func (line *optionLine) parseQuoteString() (string, bool) {
	if line.line[line.pos] != '"' {
		start := line.pos
		for !line.isEOL() {
			by := line.line[line.pos]
			if unicode.IsSpace(rune(by)) || by == ',' {
				break
			}
			line.pos++
		}
		return line.line[start:line.pos], line.pos != start
	}

	value := ""
	for {
		by := line.getNext(true)
		if by == 0 {
			// Unterminated quote.
			return value, false
		}
		// Inside a quoted string "" gets replaced by single quote.
		if by == '"' {
			if line.pos+1 < len(line.line) && line.line[line.pos+1] == '"' {
				line.pos++
			} else {
				line.pos++
				return value, true
			}
		}
		value += string(by)
	}
}

// Parse option name.
func (line *optionLine) getName() (string, error) {
	// Check if end of line.
	if line.isEOL() {
		return "", nil
	}

	// First character must be alphabetic.
	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return "", fmt.Errorf("invalid option encountered line: %d [%d]", line.number, line.pos)
	}
	value := ""

	// Already verified that first character is letter,
	// so grab until not letter or number.
	for by != 0 {
		value += string([]byte{by})
		by = line.getNext(false)
	}

	return value, nil
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	// Skip leading space
	line.skipSpace()

	// Grab option name
	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	// Empty option.
	option := Option{Name: value}

	// If at end of line done.
	if line.isEOL() {
		return &option, nil
	}

	// Check if equals option.
	if line.line[line.pos] == '=' {
		line.pos++
		if line.isEOL() {
			return nil, fmt.Errorf("missing value after = line: %d [%d]", line.number, line.pos)
		}
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("invalid quoted string line: %d [%d]", line.number, line.pos)
		}
		option.EqualOpt = v
	}

	// Skip any spaces.
	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++ // Skip comma
		// Skip space between , and next option
		line.skipSpace()
		v, err := line.getName()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		// Skip any trailing spaces.
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
