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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFromJSON(t *testing.T) {
	assert.Equal(t, KindString, ValueFromJSON(`"x"`).Kind())
	assert.Equal(t, KindObject, ValueFromJSON(`{"a":1}`).Kind())
	assert.Equal(t, KindArray, ValueFromJSON(`[1,2]`).Kind())
	assert.Equal(t, KindBoolean, ValueFromJSON(`true`).Kind())
	assert.Equal(t, KindBoolean, ValueFromJSON(`false`).Kind())
	assert.Equal(t, KindNull, ValueFromJSON(`null`).Kind())
	assert.Equal(t, KindNumber, ValueFromJSON(`-12.5e3`).Kind())
	assert.Equal(t, KindNone, ValueFromJSON(`  `).Kind())

	// Leading whitespace is trimmed before classification.
	assert.Equal(t, KindObject, ValueFromJSON(` {"a":1}`).Kind())
}

func TestAutoValue(t *testing.T) {
	assert.Equal(t, KindBoolean, AutoValue("true").Kind())
	assert.True(t, AutoValue("true").Bool())
	assert.Equal(t, KindBoolean, AutoValue("false").Kind())
	assert.Equal(t, KindNull, AutoValue("null").Kind())
	assert.Equal(t, KindNumber, AutoValue("42").Kind())
	assert.Equal(t, KindNumber, AutoValue("-3.14").Kind())
	assert.Equal(t, KindNumber, AutoValue("1e9").Kind())
	assert.Equal(t, KindObject, AutoValue(`{"a":1}`).Kind())
	assert.Equal(t, KindArray, AutoValue(`[1]`).Kind())

	// Number look-alikes that are not numbers stay strings.
	assert.Equal(t, KindString, AutoValue("1.2.3").Kind())
	assert.Equal(t, KindString, AutoValue("-").Kind())
	assert.Equal(t, KindString, AutoValue("1e").Kind())
	assert.Equal(t, KindString, AutoValue("truely").Kind())
	assert.Equal(t, KindString, AutoValue("").Kind())
}

func TestRawValueIsEmpty(t *testing.T) {
	assert.True(t, StringValue(RawString("")).IsEmpty())
	assert.True(t, StringValue(JSONString(`""`)).IsEmpty())
	assert.False(t, StringValue(RawString("x")).IsEmpty())
	assert.True(t, ObjectValue("{}").IsEmpty())
	assert.True(t, ArrayValue("[]").IsEmpty())
	assert.False(t, ObjectValue(`{"a":1}`).IsEmpty())
	assert.True(t, NullValue().IsEmpty())
	assert.True(t, RawValue{}.IsEmpty())
	assert.False(t, NumberValue("0").IsEmpty())
	assert.False(t, BoolValue(false).IsEmpty())
}

func TestParseObject(t *testing.T) {
	v := ObjectValue(`{"b": 1, "a": "x", "b": {"c": [1, 2]}, "esc\nkey": null}`)
	fields, err := v.ParseObject()
	require.NoError(t, err)
	require.Len(t, fields, 4)

	// Order is preserved and duplicate keys stay separate.
	assert.Equal(t, "b", fields[0].Key)
	assert.Equal(t, KindNumber, fields[0].Value.Kind())
	assert.Equal(t, "1", fields[0].Value.Source())

	assert.Equal(t, "a", fields[1].Key)
	assert.Equal(t, KindString, fields[1].Value.Kind())

	assert.Equal(t, "b", fields[2].Key)
	assert.Equal(t, KindObject, fields[2].Value.Kind())
	assert.Equal(t, `{"c": [1, 2]}`, fields[2].Value.Source())

	// Escaped keys decode.
	assert.Equal(t, "esc\nkey", fields[3].Key)
	assert.Equal(t, KindNull, fields[3].Value.Kind())
}

func TestParseObjectEmpty(t *testing.T) {
	fields, err := ObjectValue(` { } `).ParseObject()
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestParseObjectMalformed(t *testing.T) {
	for _, span := range []string{
		``,
		`[1]`,
		`{`,
		`{"a"}`,
		`{"a":}`,
		`{"a":1,}`,
		`{"a":1 "b":2}`,
		`{"a":"unterminated}`,
	} {
		t.Run(span, func(t *testing.T) {
			_, err := ObjectValue(span).ParseObject()
			assert.Error(t, err)
		})
	}
}

func TestParseArray(t *testing.T) {
	items, err := ArrayValue(`[1, "two", true, null, {"a":1}, [2]]`).ParseArray()
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, KindNumber, items[0].Kind())
	assert.Equal(t, KindString, items[1].Kind())
	assert.Equal(t, KindBoolean, items[2].Kind())
	assert.Equal(t, KindNull, items[3].Kind())
	assert.Equal(t, KindObject, items[4].Kind())
	assert.Equal(t, KindArray, items[5].Kind())
}

func TestParseArrayLarge(t *testing.T) {
	span := "[0"
	for i := 1; i < 100; i++ {
		span += ",0"
	}
	span += "]"
	items, err := ArrayValue(span).ParseArray()
	require.NoError(t, err)
	assert.Len(t, items, 100)
}

func TestParseArrayMalformed(t *testing.T) {
	for _, span := range []string{``, `{"a":1}`, `[`, `[1,]`, `[1 2]`} {
		t.Run(span, func(t *testing.T) {
			_, err := ArrayValue(span).ParseArray()
			assert.Error(t, err)
		})
	}
}

func TestTimestampParse(t *testing.T) {
	ts, ok := NewTimestamp("2006-01-02T22:04:05Z").Parse()
	require.True(t, ok)
	assert.Equal(t, time.Date(2006, time.January, 2, 22, 4, 5, 0, time.UTC), ts.UTC())

	ts, ok = NewTimestamp("1136239445").Parse()
	require.True(t, ok)
	assert.Equal(t, int64(1136239445), ts.Unix())

	ts, ok = NewTimestamp("1136239445123").Parse()
	require.True(t, ok)
	assert.Equal(t, int64(1136239445123), ts.UnixMilli())

	ts, ok = NewTimestamp("1136239445.5").Parse()
	require.True(t, ok)
	assert.Equal(t, int64(1136239445), ts.Unix())

	_, ok = NewTimestamp("yesterday").Parse()
	assert.False(t, ok)

	_, ok = Timestamp{}.Parse()
	assert.False(t, ok)
	assert.True(t, Timestamp{}.IsZero())
}

func TestCallerIsSet(t *testing.T) {
	assert.False(t, Caller{}.IsSet())
	assert.True(t, Caller{Text: "somewhere"}.IsSet())
	assert.True(t, Caller{File: "main.go", Line: "10"}.IsSet())
}
