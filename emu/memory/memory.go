/*
 * HP16C - Memory registers
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

package memory

import (
	"errors"

	"lukechampine.com/uint128"
)

// Number of addressable storage registers.
const Size = 16

var ErrInvalidIndex = errors.New("invalid register index")

// Registers holds the storage registers R0 to R15. Values are kept masked
// to the word size the caller passes in.
type Registers struct {
	reg [Size]uint128.Uint128
}

// Check if index is in range.
func CheckIndex(index int) bool {
	return index >= 0 && index < Size
}

// Get register value.
func (r *Registers) Get(index int) (uint128.Uint128, error) {
	if !CheckIndex(index) {
		return uint128.Zero, ErrInvalidIndex
	}
	return r.reg[index], nil
}

// Put a value to a register, under mask.
func (r *Registers) Put(index int, value, mask uint128.Uint128) error {
	if !CheckIndex(index) {
		return ErrInvalidIndex
	}
	r.reg[index] = value.And(mask)
	return nil
}

// Apply a new mask to all registers, used when word size shrinks.
func (r *Registers) Remask(mask uint128.Uint128) {
	for i := range r.reg {
		r.reg[i] = r.reg[i].And(mask)
	}
}

// Zero all registers.
func (r *Registers) Clear() {
	r.reg = [Size]uint128.Uint128{}
}

// Return copy of all registers.
func (r *Registers) All() [Size]uint128.Uint128 {
	return r.reg
}
