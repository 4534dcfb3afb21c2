/*
 * HP16C - Word masking and sign helpers
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

import (
	"math/big"

	"lukechampine.com/uint128"
)

// Word is one calculator register.
type Word = uint128.Uint128

const (
	MinWordSize = 1
	MaxWordSize = 128
)

// Return mask of word size bits. Size 128 is the full register.
func maskOf(size uint) Word {
	return uint128.Max.Rsh(MaxWordSize - size)
}

// Return sign bit for word size.
func signOf(size uint) Word {
	return uint128.From64(1).Lsh(size - 1)
}

// Test bit n of value.
func bitSet(value Word, n uint) bool {
	return !value.Rsh(n).And64(1).IsZero()
}

// Check if value is negative as two's complement of size bits.
func isNegative(value Word, size uint) bool {
	return bitSet(value, size-1)
}

// Convert masked value to signed big integer.
func signedBig(value Word, size uint) *big.Int {
	v := value.Big()
	if isNegative(value, size) {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), size))
	}
	return v
}

// Check if a signed result fits in size bits.
func fitsSigned(v *big.Int, size uint) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), size-1)
	if v.Cmp(limit) >= 0 {
		return false
	}
	return v.Cmp(limit.Neg(limit)) >= 0
}

// Reduce a non negative big integer to word size.
func fromBig(v *big.Int, mask Word) Word {
	low := new(big.Int).And(v, mask.Big())
	return uint128.FromBig(low)
}
