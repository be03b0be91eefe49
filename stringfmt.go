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

import "bytes"

// formatValueAuto renders a string value choosing, per byte-classification
// mask, the cheapest unambiguous representation: bare, double-quoted without
// escaping, single-quoted, backtick-quoted, or fully escaped double-quoted.
//
// nested is true for array elements: those skip the empty-string token and
// the leading-bracket disambiguation that only top-level scalars need.
// A malformed encoded string degrades to its raw source bytes.
func formatValueAuto(b *Buffer, s EncodedString, nested bool) {
	if !nested && s.IsEmpty() {
		b.WriteString(`""`)
		return
	}

	begin := len(b.B)
	if err := s.Decode(plainSink{b}); err != nil {
		b.B = b.B[:begin]
		b.WriteString(s.Source())
		return
	}

	var mask charMask
	for _, c := range b.B[begin:] {
		mask |= charGroups[c]
	}

	if mask == 0 {
		if nested || len(b.B) == begin {
			return
		}
		if first := b.B[begin]; first != '[' && first != '{' {
			return
		}
	}

	if mask&(maskDoubleQuote|maskControl|maskBackslash) == 0 {
		wrapSpan(b, begin, '"')
		return
	}

	if mask&(maskSingleQuote|maskControl|maskBackslash) == 0 {
		wrapSpan(b, begin, '\'')
		return
	}

	const xs = maskControl | maskExtendedSpace
	if m := mask & (maskBacktick | xs); m == 0 || m == xs {
		wrapSpan(b, begin, '`')
		return
	}

	b.B = b.B[:begin]
	formatValueQuoted(b, s)
}

// formatValueQuoted renders the string fully JSON-escaped in double quotes.
func formatValueQuoted(b *Buffer, s EncodedString) {
	begin := len(b.B)
	b.WriteByte('"')
	if err := s.Decode(jsonSink{b}); err != nil {
		b.B = b.B[:begin]
		b.WriteString(s.Source())
		return
	}
	b.WriteByte('"')
}

// formatValueRaw appends the decoded bytes with no quoting at all, falling
// back to the source bytes on a malformed escape.
func formatValueRaw(b *Buffer, s EncodedString) {
	begin := len(b.B)
	if err := s.Decode(plainSink{b}); err != nil {
		b.B = b.B[:begin]
		b.WriteString(s.Source())
	}
}

// formatMessageAuto renders a message value: bare unless the decoded text
// starts with a double quote or contains an equal sign, in which case it is
// re-rendered fully escaped so it cannot be misread as a field.
func formatMessageAuto(b *Buffer, s EncodedString) {
	if s.IsEmpty() {
		return
	}

	begin := len(b.B)
	if err := s.Decode(plainSink{b}); err != nil {
		b.B = b.B[:begin]
		b.WriteString(s.Source())
		return
	}

	span := b.B[begin:]
	if len(span) > 0 && (span[0] == '"' || bytes.IndexByte(span, '=') >= 0) {
		b.B = b.B[:begin]
		formatValueQuoted(b, s)
	}
}

// wrapSpan wraps the span written since begin in the quote byte q, shifting
// the span right by one instead of re-rendering it.
func wrapSpan(b *Buffer, begin int, q byte) {
	b.B = append(b.B, q, q)
	n := len(b.B)
	copy(b.B[begin+1:n-1], b.B[begin:n-2])
	b.B[begin] = q
}
