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
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var errMalformedString = errors.New("malformed encoded string")

// EncodedString is a string value that is either already-decoded text or
// JSON-escaped source text requiring a decode pass. JSON-encoded strings keep
// their surrounding double quotes in the source form.
type EncodedString struct {
	data string
	json bool
}

// RawString wraps already-decoded text.
func RawString(s string) EncodedString {
	return EncodedString{data: s}
}

// JSONString wraps a JSON string literal including its surrounding quotes.
func JSONString(s string) EncodedString {
	return EncodedString{data: s, json: true}
}

func (s EncodedString) IsRaw() bool {
	return !s.json
}

// Source returns the original source bytes, escapes and quotes included.
func (s EncodedString) Source() string {
	return s.data
}

func (s EncodedString) IsEmpty() bool {
	if s.json {
		return len(s.data) <= 2
	}
	return len(s.data) == 0
}

// byteSink receives decoded bytes. The plain sink appends them verbatim, the
// JSON sink re-escapes them, so one decode pass serves both the raw and the
// fully-escaped renderings.
type byteSink interface {
	writeByte(c byte)
	write(s string)
}

type plainSink struct {
	b *Buffer
}

func (p plainSink) writeByte(c byte) { p.b.WriteByte(c) }
func (p plainSink) write(s string)   { p.b.WriteString(s) }

type jsonSink struct {
	b *Buffer
}

func (j jsonSink) writeByte(c byte) {
	if needsEscape[c] {
		appendEscapedByte(j.b, c)
		return
	}
	j.b.WriteByte(c)
}

func (j jsonSink) write(s string) {
	appendEscaped(j.b, s)
}

// Decode writes the decoded bytes into dst, reporting failure only on
// malformed escape sequences.
func (s EncodedString) Decode(dst byteSink) error {
	if !s.json {
		dst.write(s.data)
		return nil
	}
	return decodeJSONString(dst, s.data)
}

// decodeJSONString decodes a quoted JSON string literal into dst. It accepts
// the standard short escapes and \uXXXX including surrogate pairs; unpaired
// surrogates decode to U+FFFD the way encoding/json does.
func decodeJSONString(dst byteSink, src string) error {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return errMalformedString
	}
	src = src[1 : len(src)-1]
	for {
		i := strings.IndexByte(src, '\\')
		if i < 0 {
			dst.write(src)
			return nil
		}
		dst.write(src[:i])
		src = src[i+1:]
		if len(src) == 0 {
			return errMalformedString
		}
		c := src[0]
		src = src[1:]
		switch c {
		case '"', '\\', '/':
			dst.writeByte(c)
		case 'b':
			dst.writeByte('\b')
		case 'f':
			dst.writeByte('\f')
		case 'n':
			dst.writeByte('\n')
		case 'r':
			dst.writeByte('\r')
		case 't':
			dst.writeByte('\t')
		case 'u':
			r, rest, err := decodeUnicodeEscape(src)
			if err != nil {
				return err
			}
			src = rest
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], r)
			dst.write(string(tmp[:n]))
		default:
			return fmt.Errorf("%w: unknown escape \\%c", errMalformedString, c)
		}
	}
}

// decodeUnicodeEscape consumes the four hex digits after \u, plus a trailing
// low-surrogate escape when the first unit is a high surrogate.
func decodeUnicodeEscape(src string) (rune, string, error) {
	u, err := hex4(src)
	if err != nil {
		return 0, src, err
	}
	src = src[4:]
	r := rune(u)
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}
	if len(src) >= 6 && src[0] == '\\' && src[1] == 'u' {
		u2, err := hex4(src[2:])
		if err != nil {
			return 0, src, err
		}
		if p := utf16.DecodeRune(r, rune(u2)); p != utf8.RuneError {
			return p, src[6:], nil
		}
	}
	return utf8.RuneError, src, nil
}

func hex4(src string) (uint32, error) {
	if len(src) < 4 {
		return 0, errMalformedString
	}
	var u uint32
	for i := 0; i < 4; i++ {
		c := src[i]
		switch {
		case c >= '0' && c <= '9':
			u = u<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			u = u<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			u = u<<4 | uint32(c-'A'+10)
		default:
			return 0, fmt.Errorf("%w: bad unicode escape", errMalformedString)
		}
	}
	return u, nil
}

// needsEscape marks the bytes JSON string encoding must escape: control
// bytes, the double quote and the backslash. Backticks and single quotes stay
// literal.
var needsEscape [256]bool

func init() {
	for i := 0; i <= 0x1f; i++ {
		needsEscape[i] = true
	}
	needsEscape['"'] = true
	needsEscape['\\'] = true
}

var hexDigits = "0123456789abcdef"

// appendEscaped appends s with JSON string escaping, using chunked memory
// copies between escapable bytes.
func appendEscaped(b *Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		if !needsEscape[s[i]] {
			continue
		}
		b.B = append(b.B, s[start:i]...)
		appendEscapedByte(b, s[i])
		start = i + 1
	}
	b.B = append(b.B, s[start:]...)
}

func appendEscapedByte(b *Buffer, c byte) {
	switch c {
	case '"':
		b.B = append(b.B, '\\', '"')
	case '\\':
		b.B = append(b.B, '\\', '\\')
	case '\n':
		b.B = append(b.B, '\\', 'n')
	case '\r':
		b.B = append(b.B, '\\', 'r')
	case '\t':
		b.B = append(b.B, '\\', 't')
	case '\b':
		b.B = append(b.B, '\\', 'b')
	case '\f':
		b.B = append(b.B, '\\', 'f')
	default:
		b.B = append(b.B, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
	}
}
