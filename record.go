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
	"strconv"
	"strings"
	"time"
)

var errMalformedValue = errors.New("malformed value span")

// Record is one immutable structured log record, consumed read-only by the
// formatter. Every part is optional; fields keep insertion order and may
// repeat keys (duplicates render independently, never merged).
type Record struct {
	Time    Timestamp
	Level   Level
	Logger  string
	Caller  Caller
	Message RawValue
	Fields  []Field
	Source  []byte
}

// Field is one (key, value) pair of a record or nested object.
type Field struct {
	Key   string
	Value RawValue
}

// Caller is either free text or a file with an optional line.
type Caller struct {
	Text string
	File string
	Line string
}

func (c Caller) IsSet() bool {
	return c.Text != "" || c.File != ""
}

// Timestamp keeps the raw timestamp bytes; parsing is deferred until the
// formatter's reformat fast path has failed.
type Timestamp struct {
	raw string
}

func NewTimestamp(raw string) Timestamp {
	return Timestamp{raw: raw}
}

func (t Timestamp) IsZero() bool {
	return t.raw == ""
}

func (t Timestamp) Raw() string {
	return t.raw
}

// Parse interprets the raw bytes as RFC3339 or as unix seconds/milliseconds.
func (t Timestamp) Parse() (time.Time, bool) {
	if t.raw == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339Nano, t.raw); err == nil {
		return ts, true
	}
	if sec, err := strconv.ParseInt(t.raw, 10, 64); err == nil {
		if len(t.raw) >= 13 {
			return time.UnixMilli(sec).UTC(), true
		}
		return time.Unix(sec, 0).UTC(), true
	}
	if sec, err := strconv.ParseFloat(t.raw, 64); err == nil {
		n := int64(sec * float64(time.Second))
		return time.Unix(0, n).UTC(), true
	}
	return time.Time{}, false
}

// Kind tags the RawValue union.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindArray
)

// RawValue is a lazily-decodable typed value. Object and array spans are
// parsed on demand during rendering, never eagerly.
type RawValue struct {
	kind Kind
	str  EncodedString
	raw  string
	b    bool
}

func StringValue(s EncodedString) RawValue {
	return RawValue{kind: KindString, str: s, raw: s.Source()}
}

func NumberValue(raw string) RawValue {
	return RawValue{kind: KindNumber, raw: raw}
}

func BoolValue(v bool) RawValue {
	raw := "false"
	if v {
		raw = "true"
	}
	return RawValue{kind: KindBoolean, raw: raw, b: v}
}

func NullValue() RawValue {
	return RawValue{kind: KindNull, raw: "null"}
}

func ObjectValue(span string) RawValue {
	return RawValue{kind: KindObject, raw: span}
}

func ArrayValue(span string) RawValue {
	return RawValue{kind: KindArray, raw: span}
}

// ValueFromJSON classifies a JSON value span by its first byte.
func ValueFromJSON(span string) RawValue {
	s := strings.TrimSpace(span)
	if s == "" {
		return RawValue{}
	}
	switch s[0] {
	case '"':
		return StringValue(JSONString(s))
	case '{':
		return ObjectValue(s)
	case '[':
		return ArrayValue(s)
	case 't':
		if s == "true" {
			return BoolValue(true)
		}
	case 'f':
		if s == "false" {
			return BoolValue(false)
		}
	case 'n':
		if s == "null" {
			return NullValue()
		}
	}
	return NumberValue(s)
}

// AutoValue re-types an already-decoded string the way raw stream formats
// (logfmt and friends) expect: bare literals that look like numbers, booleans,
// null or containers render as such, everything else stays a string.
func AutoValue(s string) RawValue {
	switch {
	case s == "true":
		return BoolValue(true)
	case s == "false":
		return BoolValue(false)
	case s == "null":
		return NullValue()
	case looksLikeNumber(s):
		return NumberValue(s)
	case len(s) > 0 && (s[0] == '{' || s[0] == '['):
		return ValueFromJSON(s)
	}
	return StringValue(RawString(s))
}

func (v RawValue) Kind() Kind {
	return v.kind
}

// Str returns the string payload; valid only for KindString.
func (v RawValue) Str() EncodedString {
	return v.str
}

// Bool returns the boolean payload; valid only for KindBoolean.
func (v RawValue) Bool() bool {
	return v.b
}

// Source returns the original source bytes of the value.
func (v RawValue) Source() string {
	return v.raw
}

// IsEmpty reports whether the value renders to nothing of interest, for the
// hide-empty-fields option: an empty string, `{}`, `[]` or null.
func (v RawValue) IsEmpty() bool {
	switch v.kind {
	case KindString:
		return v.str.IsEmpty()
	case KindObject, KindArray:
		return len(strings.TrimSpace(v.raw)) <= 2
	case KindNull, KindNone:
		return true
	}
	return false
}

// ParseObject splits an object span into its member fields, keys decoded,
// values left as lazy spans.
func (v RawValue) ParseObject() ([]Field, error) {
	s := v.raw
	i := skipSpace(s, 0)
	if i >= len(s) || s[i] != '{' {
		return nil, errMalformedValue
	}
	i++
	var fields []Field
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return nil, errMalformedValue
		}
		if s[i] == '}' {
			return fields, nil
		}
		if len(fields) > 0 {
			if s[i] != ',' {
				return nil, errMalformedValue
			}
			i = skipSpace(s, i+1)
		}
		key, next, err := scanKey(s, i)
		if err != nil {
			return nil, err
		}
		i = skipSpace(s, next)
		if i >= len(s) || s[i] != ':' {
			return nil, errMalformedValue
		}
		i = skipSpace(s, i+1)
		end, err := skipValue(s, i)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: key, Value: ValueFromJSON(s[i:end])})
		i = end
	}
}

// arrayParseArity is how many elements an array parse holds without growing.
const arrayParseArity = 32

// ParseArray splits an array span into lazy element spans. Arrays beyond the
// parse arity spill to the heap rather than failing.
func (v RawValue) ParseArray() ([]RawValue, error) {
	s := v.raw
	i := skipSpace(s, 0)
	if i >= len(s) || s[i] != '[' {
		return nil, errMalformedValue
	}
	i++
	items := make([]RawValue, 0, arrayParseArity)
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return nil, errMalformedValue
		}
		if s[i] == ']' {
			return items, nil
		}
		if len(items) > 0 {
			if s[i] != ',' {
				return nil, errMalformedValue
			}
			i = skipSpace(s, i+1)
		}
		end, err := skipValue(s, i)
		if err != nil {
			return nil, err
		}
		items = append(items, ValueFromJSON(s[i:end]))
		i = end
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// scanKey reads a JSON object key at i, returning the decoded key text and
// the index just past the closing quote. Keys without escapes are sliced
// zero-copy from the span.
func scanKey(s string, i int) (string, int, error) {
	if i >= len(s) || s[i] != '"' {
		return "", i, errMalformedValue
	}
	j := i + 1
	escaped := false
	for j < len(s) {
		switch s[j] {
		case '\\':
			escaped = true
			j += 2
			continue
		case '"':
			if !escaped {
				return s[i+1 : j], j + 1, nil
			}
			var b Buffer
			if err := decodeJSONString(plainSink{&b}, s[i:j+1]); err != nil {
				return "", i, err
			}
			return string(b.B), j + 1, nil
		}
		j++
	}
	return "", i, errMalformedValue
}

// skipValue returns the index just past the JSON value starting at i.
func skipValue(s string, i int) (int, error) {
	if i >= len(s) {
		return i, errMalformedValue
	}
	switch s[i] {
	case '"':
		return skipString(s, i)
	case '{':
		return skipComposite(s, i, '{', '}')
	case '[':
		return skipComposite(s, i, '[', ']')
	default:
		j := i
		for j < len(s) {
			switch s[j] {
			case ',', '}', ']', ' ', '\t', '\n', '\r':
				if j == i {
					return i, errMalformedValue
				}
				return j, nil
			}
			j++
		}
		return j, nil
	}
}

func skipString(s string, i int) (int, error) {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1, nil
		}
	}
	return i, errMalformedValue
}

// skipComposite walks a nested object or array span, respecting strings.
func skipComposite(s string, i int, open, close byte) (int, error) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '"':
			end, err := skipString(s, j)
			if err != nil {
				return i, err
			}
			j = end - 1
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		}
	}
	return i, errMalformedValue
}

func looksLikeNumber(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		digits = 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digits = 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return false
		}
	}
	return i == len(s)
}
