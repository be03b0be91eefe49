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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferWrites(t *testing.T) {
	var b Buffer
	b.WriteString("abc")
	b.WriteByte('d')
	n, err := b.Write([]byte("ef"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcdef", string(b.B))
	assert.Equal(t, 6, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
}

func TestBufferPoolRoundTrip(t *testing.T) {
	b := GetBuffer()
	b.WriteString("content")
	b.Free()

	b2 := GetBuffer()
	assert.Equal(t, 0, b2.Len())
	b2.Free()
}

func TestWithAutoTrim(t *testing.T) {
	var b Buffer
	b.WriteString("keep  ")
	b.withAutoTrim(func() {
		b.WriteString("value \t\r\n ")
	})
	// Only the span written inside the callback is trimmed.
	assert.Equal(t, "keep  value", string(b.B))

	b.Reset()
	b.withAutoTrim(func() {
		b.WriteString("   ")
	})
	assert.Equal(t, "", string(b.B))

	b.Reset()
	b.withAutoTrim(func() {})
	assert.Equal(t, "", string(b.B))
}
