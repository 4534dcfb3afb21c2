/*
 * HP16C - Stack operations
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

// Push value onto stack. If lift is disabled value replaces X.
func (e *Engine) Push(value Word) {
	value = value.And(e.mask)
	if e.noLift {
		e.noLift = false
		e.stack[regX] = value
		return
	}
	e.lift()
	e.stack[regX] = value
}

// Copy X into Y lifting the stack. Next push replaces X.
func (e *Engine) Enter() {
	e.lift()
	e.noLift = true
}

// Remove X, T is duplicated.
func (e *Engine) Drop() {
	e.drop()
	e.noLift = false
}

// Return X and drop stack.
func (e *Engine) Pop() Word {
	x := e.stack[regX]
	e.Drop()
	return x
}

// Exchange X and Y.
func (e *Engine) SwapXY() {
	e.stack[regX], e.stack[regY] = e.stack[regY], e.stack[regX]
	e.noLift = false
}

// Roll stack down, X goes to T.
func (e *Engine) RollDown() {
	x := e.stack[regX]
	copy(e.stack[regX:regT], e.stack[regY:])
	e.stack[regT] = x
	e.noLift = false
}

// Roll stack up, T goes to X.
func (e *Engine) RollUp() {
	t := e.stack[regT]
	copy(e.stack[regY:], e.stack[regX:regT])
	e.stack[regX] = t
	e.noLift = false
}

// Clear X, next push replaces it.
func (e *Engine) ClearX() {
	e.stack[regX] = uint128.Zero
	e.noLift = true
}

// Clear all stack registers.
func (e *Engine) ClearStack() {
	e.stack = [4]Word{}
	e.noLift = false
}

// Shift stack up one, T is lost.
func (e *Engine) lift() {
	copy(e.stack[regY:], e.stack[regX:regT])
}

// Shift stack down one, T is duplicated.
func (e *Engine) drop() {
	copy(e.stack[regX:regT], e.stack[regY:])
}

// Replace X and Y with result, dropping stack.
func (e *Engine) dropWith(result Word) {
	e.drop()
	e.stack[regX] = result
	e.noLift = false
}
