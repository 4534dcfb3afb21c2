/*
 * HP16C - Logical, shift and rotate operations
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

package engine

import "lukechampine.com/uint128"

// ShiftKind selects the shift or rotate performed by Shift and ShiftBy.
type ShiftKind int

const (
	ShiftLeft       ShiftKind = iota // Logical left, zero fill.
	ShiftRight                       // Logical right, zero fill.
	ShiftRightArith                  // Right, sign fill.
	RotateLeft                       // Rotate left within word.
	RotateRight                      // Rotate right within word.
)

var shiftNames = [...]string{"SL", "SR", "ASR", "RL", "RR"}

func (k ShiftKind) String() string {
	if k < 0 || int(k) >= len(shiftNames) {
		return "shift?"
	}
	return shiftNames[k]
}

// Y and X.
func (e *Engine) And() {
	e.dropWith(e.stack[regY].And(e.stack[regX]))
}

// Y or X.
func (e *Engine) Or() {
	e.dropWith(e.stack[regY].Or(e.stack[regX]))
}

// Y exclusive or X.
func (e *Engine) Xor() {
	e.dropWith(e.stack[regY].Xor(e.stack[regX]))
}

// Complement X.
func (e *Engine) Not() {
	e.stack[regX] = e.stack[regX].Xor(e.mask)
	e.noLift = false
}

// Shift X by count. Carry gets last bit shifted out.
func (e *Engine) Shift(kind ShiftKind, count uint) {
	e.stack[regX], e.carry = e.shift(kind, e.stack[regX], count)
	e.overflow = false
	e.noLift = false
}

// Shift X by count in Y, Y is consumed.
func (e *Engine) ShiftBy(kind ShiftKind) {
	count := e.stack[regY]
	n := uint(MaxWordSize + 1)
	switch {
	case kind == RotateLeft || kind == RotateRight:
		// Only count modulo word size matters, keep it non zero if it was.
		if !count.IsZero() {
			_, r := count.QuoRem(uint128.From64(uint64(e.wordSize)))
			n = uint(r.Lo) + e.wordSize
		} else {
			n = 0
		}
	case count.Hi == 0 && count.Lo <= MaxWordSize:
		n = uint(count.Lo)
	}
	result, carry := e.shift(kind, e.stack[regX], n)
	e.carry = carry
	e.overflow = false
	e.dropWith(result)
}

func (e *Engine) shift(kind ShiftKind, value Word, n uint) (Word, bool) {
	size := e.wordSize
	if n == 0 {
		return value, false
	}
	switch kind {
	case ShiftLeft:
		if n > size {
			return uint128.Zero, false
		}
		return value.Lsh(n).And(e.mask), bitSet(value, size-n)
	case ShiftRight:
		if n > size {
			return uint128.Zero, false
		}
		return value.Rsh(n), bitSet(value, n-1)
	case ShiftRightArith:
		neg := isNegative(value, size)
		if n >= size {
			if neg {
				return e.mask, true
			}
			return uint128.Zero, false
		}
		result := value.Rsh(n)
		if neg {
			result = result.Or(e.mask.Xor(e.mask.Rsh(n)))
		}
		return result, bitSet(value, n-1)
	case RotateLeft:
		result := e.rotate(value, n%size)
		return result, bitSet(result, 0)
	case RotateRight:
		result := e.rotate(value, size-n%size)
		return result, bitSet(result, size-1)
	}
	return value, false
}

// Rotate value left n bits within word, n less then word size.
func (e *Engine) rotate(value Word, n uint) Word {
	if n == 0 || n == e.wordSize {
		return value
	}
	return value.Lsh(n).Or(value.Rsh(e.wordSize - n)).And(e.mask)
}
