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

import "sync"

// Buffer is an append-only byte buffer pooled for maximum performance.
//
// Formatting one record appends bytes to a caller-owned Buffer; prior contents
// are never inspected or truncated except by the controlled fallback paths of
// the formatter itself. Callers are expected to reuse buffers across many
// records to amortize allocation.
type Buffer struct {
	B []byte
}

var bufPool = sync.Pool{
	New: func() any {
		return &Buffer{B: make([]byte, 0, 4096)}
	},
}

// GetBuffer retrieves a pooled buffer.
func GetBuffer() *Buffer {
	return bufPool.Get().(*Buffer)
}

func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Free returns the buffer to the pool unless it has grown unreasonably large.
func (b *Buffer) Free() {
	if cap(b.B) > 64*1024 {
		return
	}
	b.Reset()
	bufPool.Put(b)
}

func (b *Buffer) Len() int {
	return len(b.B)
}

func (b *Buffer) WriteString(s string) {
	b.B = append(b.B, s...)
}

func (b *Buffer) WriteByte(c byte) {
	b.B = append(b.B, c)
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// withAutoTrim runs f and then removes any trailing ASCII whitespace from the
// span f appended. Bytes written before the call are left untouched.
func (b *Buffer) withAutoTrim(f func()) {
	begin := len(b.B)
	f()
	end := len(b.B)
	for end > begin && asciiSpace(b.B[end-1]) {
		end--
	}
	b.B = b.B[:end]
}

func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
