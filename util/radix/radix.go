/*
 * HP16C - Format registers in a number base
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

package radix

import (
	"strings"

	"lukechampine.com/uint128"
)

var digitMap = "0123456789ABCDEF"

// Return number of bits in one digit, 0 for decimal.
func bitsPerDigit(base int) uint {
	switch base {
	case 2:
		return 1
	case 8:
		return 3
	case 16:
		return 4
	}
	return 0
}

// Return digits needed to show a full word.
func Width(base int, wordSize uint) int {
	shift := bitsPerDigit(base)
	if shift == 0 {
		return 0
	}
	return int((wordSize + shift - 1) / shift)
}

// Format value with no leading zeros. If signed is set decimal values
// with the sign bit of wordSize set are shown negative.
func Format(value uint128.Uint128, base int, wordSize uint, signed bool) string {
	return format(value, base, wordSize, signed, 0)
}

// Format value zero filled to the full word width. Decimal is not padded.
func FormatWidth(value uint128.Uint128, base int, wordSize uint) string {
	return format(value, base, wordSize, false, Width(base, wordSize))
}

func format(value uint128.Uint128, base int, wordSize uint, signed bool, width int) string {
	shift := bitsPerDigit(base)
	if shift != 0 {
		return formatPower(value, shift, width)
	}
	if base != 10 {
		return strings.ToUpper(value.Big().Text(base))
	}
	if signed && wordSize > 0 && !value.Rsh(wordSize-1).And64(1).IsZero() {
		mask := uint128.Max.Rsh(128 - wordSize)
		return "-" + uint128.Zero.SubWrap(value).And(mask).String()
	}
	return value.String()
}

// Format digits of power of two base, least significant first.
func formatPower(value uint128.Uint128, shift uint, width int) string {
	var buf [128]byte
	pos := len(buf)
	mask := uint64(1)<<shift - 1
	for count := 0; ; count++ {
		if count >= width && count != 0 && value.IsZero() {
			break
		}
		pos--
		buf[pos] = digitMap[value.Lo&mask]
		value = value.Rsh(shift)
	}
	return string(buf[pos:])
}

// Put a space between every group of n digits, counting from the right.
func Group(digits string, n int) string {
	if n <= 0 || len(digits) <= n {
		return digits
	}
	var str strings.Builder
	lead := len(digits) % n
	if lead != 0 {
		str.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += n {
		if str.Len() != 0 {
			str.WriteByte(' ')
		}
		str.WriteString(digits[i : i+n])
	}
	return str.String()
}

// Return value of digit in base, or -1 if not a digit of base.
func Digit(base int, by byte) int {
	if by >= 'a' && by <= 'z' {
		by -= 'a' - 'A'
	}
	d := strings.IndexByte(digitMap, by)
	if d >= base {
		return -1
	}
	return d
}
