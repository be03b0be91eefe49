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
	"github.com/stretchr/testify/require"
)

func decodePlain(t *testing.T, s EncodedString) string {
	t.Helper()
	var b Buffer
	require.NoError(t, s.Decode(plainSink{&b}))
	return string(b.B)
}

func TestDecodeJSONString(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"short escapes", `"a\"b\\c\/d\be\ff\ng\rh\ti"`, "a\"b\\c/d\be\ff\ng\rh\ti"},
		{"unicode escape", `"\u0041\u00e9"`, "Aé"},
		{"surrogate pair", `"\ud83d\ude00"`, "\U0001F600"},
		{"lone high surrogate", `"\ud83dx"`, "�x"},
		{"lone low surrogate", `"\ude00x"`, "�x"},
		{"utf8 passthrough", `"héllo wörld"`, "héllo wörld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePlain(t, JSONString(tt.src)))
		})
	}
}

func TestDecodeJSONStringMalformed(t *testing.T) {
	for _, src := range []string{
		`"`,
		`no quotes`,
		`"unterminated`,
		`"bad \q escape"`,
		`"trailing \`,
		`"short \u00"`,
		`"bad hex \uzzzz"`,
	} {
		t.Run(src, func(t *testing.T) {
			var b Buffer
			assert.Error(t, JSONString(src).Decode(plainSink{&b}))
		})
	}
}

func TestDecodeRawString(t *testing.T) {
	// Raw strings pass through with no escape interpretation at all.
	assert.Equal(t, `a\nb`, decodePlain(t, RawString(`a\nb`)))
}

func TestJSONSinkEscapes(t *testing.T) {
	var b Buffer
	require.NoError(t, RawString("a\"b\\c\nd\te\x01f`'").Decode(jsonSink{&b}))
	assert.Equal(t, `a\"b\\c\nd\te\u0001f`+"`'", string(b.B))
}

func TestEncodedStringIsEmpty(t *testing.T) {
	assert.True(t, RawString("").IsEmpty())
	assert.False(t, RawString("x").IsEmpty())
	assert.True(t, JSONString(`""`).IsEmpty())
	assert.False(t, JSONString(`"x"`).IsEmpty())
}

func TestEncodedStringSource(t *testing.T) {
	s := JSONString(`"a\nb"`)
	assert.False(t, s.IsRaw())
	assert.Equal(t, `"a\nb"`, s.Source())

	r := RawString("plain")
	assert.True(t, r.IsRaw())
	assert.Equal(t, "plain", r.Source())
}
