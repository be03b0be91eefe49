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

// keyWriter is the subset of buffer operations key prettification needs, so
// the same transform can target the output Buffer and the key-path buffer.
type keyWriter interface {
	WriteByte(c byte)
	WriteString(s string)
}

// prettifyKey writes key with every underscore replaced by a hyphen. This is
// a display-only transform; filter lookups always use the original key.
func prettifyKey(w keyWriter, key string) {
	i := 0
	for j := 0; j < len(key); j++ {
		if key[j] == '_' {
			w.WriteString(key[i:j])
			w.WriteByte('-')
			i = j + 1
		}
	}
	w.WriteString(key[i:])
}

// keyPrefix holds the dotted ancestor key chain during flattened descent.
// Push and pop calls must nest exactly with the recursion that produced them.
type keyPrefix struct {
	value smallBuffer
}

func (p *keyPrefix) Len() int {
	return p.value.Len()
}

func (p *keyPrefix) AppendTo(b *Buffer) {
	b.B = p.value.AppendTo(b.B)
}

// Push appends `.` plus the prettified key and returns the number of bytes
// appended, to be handed back to Pop.
func (p *keyPrefix) Push(key string) int {
	n := p.value.Len()
	if n != 0 {
		p.value.WriteByte('.')
	}
	prettifyKey(&p.value, key)
	return p.value.Len() - n
}

// Pop removes exactly the last n bytes.
func (p *keyPrefix) Pop(n int) {
	if n == 0 {
		return
	}
	l := p.value.Len()
	if n >= l {
		p.value.Clear()
	} else {
		p.value.Truncate(l - n)
	}
}
