/*
 * HP16C - Calculation engine
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

// Package engine implements the arithmetic core of an RPN programmers
// calculator: a four level stack, sixteen storage registers and an integer
// unit of 1 to 128 bits with carry and overflow flags.
//
// Every operation is atomic. When an operation returns an error the stack,
// registers and flags are exactly as they were before the call.
package engine

import (
	"fmt"

	"github.com/rcornwell/hp16c/emu/memory"
	"lukechampine.com/uint128"
)

// Base is the number base used for entry and display.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

const (
	DefaultWordSize = 64
	DefaultBase     = Decimal
	NumRegisters    = memory.Size
)

// Stack positions.
const (
	regX = iota
	regY
	regZ
	regT
)

// Check if base is one of the supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "BIN"
	case Octal:
		return "OCT"
	case Decimal:
		return "DEC"
	case Hexadecimal:
		return "HEX"
	}
	return fmt.Sprintf("base(%d)", int(b))
}

// Display is everything needed to render the X register.
type Display struct {
	Value    Word
	Base     Base
	WordSize uint
}

// State is a copy of the full engine state.
type State struct {
	Stack       [4]Word
	Registers   [NumRegisters]Word
	WordSize    uint
	Base        Base
	Carry       bool
	Overflow    bool
	LiftEnabled bool
}

type Engine struct {
	stack    [4]Word          // X, Y, Z, T.
	regs     memory.Registers // Storage registers.
	wordSize uint             // Bits in a word.
	mask     Word             // Mask of wordSize bits.
	base     Base             // Current number base.
	carry    bool             // Last operation carried or borrowed.
	overflow bool             // Last operation overflowed signed range.
	noLift   bool             // Next push overwrites X.
}

// Create an engine with default word size and base, everything zero.
func New() *Engine {
	e := &Engine{}
	e.wordSize = DefaultWordSize
	e.mask = maskOf(DefaultWordSize)
	e.base = DefaultBase
	return e
}

func (e *Engine) X() Word { return e.stack[regX] }
func (e *Engine) Y() Word { return e.stack[regY] }
func (e *Engine) Z() Word { return e.stack[regZ] }
func (e *Engine) T() Word { return e.stack[regT] }

// Return stack as X, Y, Z, T.
func (e *Engine) Stack() [4]Word { return e.stack }

func (e *Engine) Base() Base { return e.base }
func (e *Engine) WordSize() uint { return e.wordSize }
func (e *Engine) Mask() Word { return e.mask }
func (e *Engine) Carry() bool { return e.carry }
func (e *Engine) Overflow() bool { return e.overflow }
func (e *Engine) LiftEnabled() bool { return !e.noLift }

// Check if X is negative as a two's complement number.
func (e *Engine) Negative(value Word) bool {
	return isNegative(value, e.wordSize)
}

// Return value, base and word size for rendering X.
func (e *Engine) Display() Display {
	return Display{Value: e.stack[regX], Base: e.base, WordSize: e.wordSize}
}

// Return a copy of the engine state.
func (e *Engine) Snapshot() State {
	return State{
		Stack:       e.stack,
		Registers:   e.regs.All(),
		WordSize:    e.wordSize,
		Base:        e.base,
		Carry:       e.carry,
		Overflow:    e.overflow,
		LiftEnabled: !e.noLift,
	}
}

// Set number base.
func (e *Engine) SetBase(base Base) error {
	if !base.Valid() {
		return fmt.Errorf("base %d: %w", int(base), InvalidBase)
	}
	e.base = base
	return nil
}

// Set word size, truncates stack and registers to new size.
func (e *Engine) SetWordSize(size int) error {
	if size < MinWordSize || size > MaxWordSize {
		return fmt.Errorf("word size %d: %w", size, InvalidWordSize)
	}
	e.wordSize = uint(size)
	e.mask = maskOf(e.wordSize)
	for i := range e.stack {
		e.stack[i] = e.stack[i].And(e.mask)
	}
	e.regs.Remask(e.mask)
	e.carry = false
	e.overflow = false
	return nil
}

// Store X into register.
func (e *Engine) Store(index int) error {
	return e.StoreValue(index, e.stack[regX])
}

// Store value into register.
func (e *Engine) StoreValue(index int, value Word) error {
	if err := e.regs.Put(index, value, e.mask); err != nil {
		return fmt.Errorf("register %d: %w", index, InvalidMemoryIndex)
	}
	e.noLift = false
	return nil
}

// Push register onto stack.
func (e *Engine) Recall(index int) error {
	value, err := e.regs.Get(index)
	if err != nil {
		return fmt.Errorf("register %d: %w", index, InvalidMemoryIndex)
	}
	e.Push(value)
	return nil
}

// Return register value.
func (e *Engine) Register(index int) (Word, error) {
	value, err := e.regs.Get(index)
	if err != nil {
		return uint128.Zero, fmt.Errorf("register %d: %w", index, InvalidMemoryIndex)
	}
	return value, nil
}

// Clear stack, registers and flags. Base and word size are kept.
func (e *Engine) Reset() {
	e.stack = [4]Word{}
	e.regs.Clear()
	e.carry = false
	e.overflow = false
	e.noLift = false
}
