/*
 * HP16C - Integer arithmetic
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
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// Y + X.
func (e *Engine) Add() {
	x, y := e.stack[regX], e.stack[regY]
	sum := y.AddWrap(x)
	var carry bool
	if e.wordSize == MaxWordSize {
		carry = sum.Cmp(y) < 0
	} else {
		carry = !sum.Rsh(e.wordSize).IsZero()
	}
	result := sum.And(e.mask)
	sx, sy := e.Negative(x), e.Negative(y)
	e.carry = carry
	e.overflow = sx == sy && e.Negative(result) != sy
	e.dropWith(result)
}

// Y - X.
func (e *Engine) Sub() {
	x, y := e.stack[regX], e.stack[regY]
	result := y.SubWrap(x).And(e.mask)
	sx, sy := e.Negative(x), e.Negative(y)
	e.carry = y.Cmp(x) < 0
	e.overflow = sx != sy && e.Negative(result) != sy
	e.dropWith(result)
}

// Y * X.
func (e *Engine) Mul() {
	x, y := e.stack[regX], e.stack[regY]
	product := new(big.Int).Mul(y.Big(), x.Big())
	signed := new(big.Int).Mul(signedBig(y, e.wordSize), signedBig(x, e.wordSize))
	e.carry = product.BitLen() > int(e.wordSize)
	e.overflow = !fitsSigned(signed, e.wordSize)
	e.dropWith(fromBig(product, e.mask))
}

// Y / X, unsigned.
func (e *Engine) Div() error {
	q, _, err := e.quoRem()
	if err != nil {
		return err
	}
	e.carry = false
	e.overflow = false
	e.dropWith(q)
	return nil
}

// Y mod X, unsigned.
func (e *Engine) Rem() error {
	_, r, err := e.quoRem()
	if err != nil {
		return err
	}
	e.carry = false
	e.overflow = false
	e.dropWith(r)
	return nil
}

// Two's complement of X.
func (e *Engine) Negate() {
	x := e.stack[regX]
	e.stack[regX] = uint128.Zero.SubWrap(x).And(e.mask)
	e.carry = false
	e.overflow = x.Equals(signOf(e.wordSize))
	e.noLift = false
}

func (e *Engine) quoRem() (Word, Word, error) {
	x, y := e.stack[regX], e.stack[regY]
	if x.IsZero() {
		return uint128.Zero, uint128.Zero, fmt.Errorf("%s / 0: %w", y, DivideByZero)
	}
	q, r := y.QuoRem(x)
	return q, r, nil
}
