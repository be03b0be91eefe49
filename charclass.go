// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package prism

// charMask classifies a byte into the categories that drive quote selection.
// The bitwise OR of per-byte masks across a decoded string is the string's
// mask; every possible mask maps to exactly one of the five renderings.
type charMask uint8

const (
	maskControl charMask = 1 << iota
	maskDoubleQuote
	maskSingleQuote
	maskBackslash
	maskBacktick
	maskSpace
	maskExtendedSpace
	maskEqualSign
)

// charGroups is a precomputed 256-entry lookup table, replacing per-character
// conditional branching on the per-field hot path.
var charGroups = func() (t [256]charMask) {
	for i := 0; i < 0x20; i++ {
		t[i] = maskControl
	}
	t['\t'] = maskControl | maskExtendedSpace
	t['\n'] = maskControl | maskExtendedSpace
	t['\r'] = maskControl | maskExtendedSpace
	t[' '] = maskSpace
	t['"'] = maskDoubleQuote
	t['\''] = maskSingleQuote
	t['\\'] = maskBackslash
	t['`'] = maskBacktick
	t['='] = maskEqualSign
	return
}()
