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

// smallBufferInlineCap is the fixed capacity of the inline segment. Key paths
// of typical flattening depth fit here without touching the heap.
const smallBufferInlineCap = 256

// smallBuffer is a byte sequence with a fixed-capacity inline segment and a
// heap-growing overflow segment. Writes fill the inline segment first; the
// logical content is always the inline segment followed by the overflow
// segment, contiguous in that order.
type smallBuffer struct {
	head [smallBufferInlineCap]byte
	n    int
	tail []byte
}

func (b *smallBuffer) Len() int {
	return b.n + len(b.tail)
}

func (b *smallBuffer) WriteByte(c byte) {
	if b.n < smallBufferInlineCap && len(b.tail) == 0 {
		b.head[b.n] = c
		b.n++
		return
	}
	b.tail = append(b.tail, c)
}

func (b *smallBuffer) WriteString(s string) {
	if len(b.tail) == 0 {
		free := smallBufferInlineCap - b.n
		if len(s) <= free {
			copy(b.head[b.n:], s)
			b.n += len(s)
			return
		}
		copy(b.head[b.n:], s[:free])
		b.n = smallBufferInlineCap
		s = s[free:]
	}
	b.tail = append(b.tail, s...)
}

// Truncate shortens the logical content to n bytes, transparently across both
// segments. Truncating beyond the current length is a no-op.
func (b *smallBuffer) Truncate(n int) {
	if n >= b.Len() {
		return
	}
	if n <= b.n {
		b.n = n
		b.tail = b.tail[:0]
		return
	}
	b.tail = b.tail[:n-b.n]
}

func (b *smallBuffer) Clear() {
	b.n = 0
	b.tail = b.tail[:0]
}

// AppendTo appends the logical content to dst.
func (b *smallBuffer) AppendTo(dst []byte) []byte {
	dst = append(dst, b.head[:b.n]...)
	return append(dst, b.tail...)
}
