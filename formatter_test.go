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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatJSONLine(t *testing.T, line string, opts FormatterOptions) string {
	t.Helper()
	rec, ok := ParseRecord([]byte(line))
	require.True(t, ok)
	return formatRecord(rec, opts)
}

func formatRecord(rec *Record, opts FormatterOptions) string {
	f := NewRecordFormatter(PlainTheme(), NewTimeFormatter(DefaultTimeLayout), opts)
	var b Buffer
	f.FormatRecord(&b, rec)
	return string(b.B)
}

const fullLine = `{"time":"2000-01-02T03:04:05.123Z","level":"debug","logger":"tl","msg":"tm","k_a":{"va":{"kb":42,"kc":43}},"caller":"tc"}`

func TestFormatRecordFull(t *testing.T) {
	got := formatJSONLine(t, fullLine, FormatterOptions{})
	assert.Equal(t, "00-01-02 03:04:05.123 |DBG| tl: tm k-a={ va={ kb=42 kc=43 } } @ tc", got)
}

func TestFormatRecordFlatten(t *testing.T) {
	got := formatJSONLine(t, fullLine, FormatterOptions{Flatten: true})
	assert.Equal(t, "00-01-02 03:04:05.123 |DBG| tl: tm k-a.va.kb=42 k-a.va.kc=43 @ tc", got)
}

func TestFormatRecordPlaceholders(t *testing.T) {
	got := formatJSONLine(t, `{"msg":"hello"}`, FormatterOptions{
		AlwaysShowTime:  true,
		AlwaysShowLevel: true,
	})
	assert.Equal(t, strings.Repeat("-", 21)+" |(?)| hello", got)
}

func TestFormatRecordNoPlaceholders(t *testing.T) {
	got := formatJSONLine(t, `{"msg":"hello"}`, FormatterOptions{})
	assert.Equal(t, "hello", got)
}

func TestFormatRecordMessageQuoting(t *testing.T) {
	got := formatJSONLine(t, `{"msg":"\"hello, world\""}`, FormatterOptions{})
	assert.Equal(t, `"\"hello, world\""`, got)

	got = formatJSONLine(t, `{"msg":"rate=5"}`, FormatterOptions{})
	assert.Equal(t, `"rate=5"`, got)

	got = formatJSONLine(t, `{"msg":"it's \"quoted\" text"}`, FormatterOptions{})
	assert.Equal(t, `it's "quoted" text`, got)
}

func TestFormatRecordNonStringMessage(t *testing.T) {
	got := formatJSONLine(t, `{"msg":{"a":1}}`, FormatterOptions{})
	assert.Equal(t, "msg={ a=1 }", got)
}

func TestFormatRecordHideEmpty(t *testing.T) {
	line := `{"msg":"m","a":"","b":null,"c":{},"d":[],"e":0}`
	got := formatJSONLine(t, line, FormatterOptions{HideEmptyFields: true})
	assert.Equal(t, "m e=0", got)

	got = formatJSONLine(t, line, FormatterOptions{})
	assert.Equal(t, `m a="" b=null c={} d=[] e=0`, got)
}

func TestFormatRecordFieldFilter(t *testing.T) {
	got := formatJSONLine(t, `{"x":1,"secret":2,"token":3}`, FormatterOptions{
		Fields: ParseFieldRules([]string{"secret", "token"}),
	})
	// One indicator per scope, no matter how many fields were hidden.
	assert.Equal(t, "x=1 ...", got)
}

func TestFormatRecordNestedFilter(t *testing.T) {
	got := formatJSONLine(t, `{"a":{"b":1,"c":2}}`, FormatterOptions{
		Fields: ParseFieldRules([]string{"a", "!a.b"}),
	})
	assert.Equal(t, "a={ b=1 ... }", got)
}

func TestFormatRecordArray(t *testing.T) {
	got := formatJSONLine(t, `{"a":[1,"two",true,null,["x"]]}`, FormatterOptions{})
	assert.Equal(t, "a=[1 two true null [x]]", got)
}

func TestFormatRecordNoUnescape(t *testing.T) {
	got := formatJSONLine(t, `{"a":"x\ny"}`, FormatterOptions{NoFieldUnescaping: true})
	assert.Equal(t, `a="x\ny"`, got)

	// Flatten depends on unescaping and turns itself off with it.
	got = formatJSONLine(t, `{"a":{"b":1}}`, FormatterOptions{NoFieldUnescaping: true, Flatten: true})
	assert.Equal(t, `a={"b":1}`, got)
}

func TestFormatRecordRawTimestamp(t *testing.T) {
	// An unparseable timestamp renders verbatim, padded to the layout width.
	got := formatJSONLine(t, `{"time":"bogus","msg":"m"}`, FormatterOptions{})
	assert.Equal(t, "bogus"+strings.Repeat(" ", 16)+" m", got)
}

func TestFormatRecordUnixTimestamp(t *testing.T) {
	got := formatJSONLine(t, `{"time":1136239445,"msg":"m"}`, FormatterOptions{})
	assert.Equal(t, "06-01-02 22:04:05.000 m", got)
}

func TestFormatRecordLoggerOnly(t *testing.T) {
	got := formatJSONLine(t, `{"logger":"db","msg":"m"}`, FormatterOptions{})
	assert.Equal(t, "db: m", got)
}

func TestFormatRecordCallerFileLine(t *testing.T) {
	got := formatJSONLine(t, `{"msg":"m","caller":"f.go:9"}`, FormatterOptions{})
	assert.Equal(t, "m @ f.go:9", got)
}

func TestFormatRecordDuplicateFields(t *testing.T) {
	got := formatJSONLine(t, `{"a":1,"a":2}`, FormatterOptions{})
	assert.Equal(t, "a=1 a=2", got)
}

func TestFormatRecordQuoteSelection(t *testing.T) {
	got := formatJSONLine(t, `{"a":"hello world","b":"plain","c":"k=v"}`, FormatterOptions{})
	assert.Equal(t, `a="hello world" b=plain c="k=v"`, got)
}

func TestFormatRecordEmptyObjectField(t *testing.T) {
	got := formatJSONLine(t, `{"a":{}}`, FormatterOptions{})
	assert.Equal(t, "a={}", got)

	// Under flatten an empty object contributes nothing at all.
	got = formatJSONLine(t, `{"a":{}}`, FormatterOptions{Flatten: true})
	assert.Equal(t, "", got)
}

func TestFormatRecordMalformedSpan(t *testing.T) {
	rec := &Record{Fields: []Field{{Key: "a", Value: ObjectValue("{broken")}}}
	assert.Equal(t, "a={broken", formatRecord(rec, FormatterOptions{}))

	rec = &Record{Fields: []Field{{Key: "a", Value: ArrayValue("[1,")}}}
	assert.Equal(t, "a=[1,", formatRecord(rec, FormatterOptions{}))
}

func TestFormatRecordPunctuationOverride(t *testing.T) {
	got := formatJSONLine(t, `{"level":"info","msg":"m","a":1}`, FormatterOptions{
		Punctuation: Punctuation{
			LevelLeftSeparator:     "[",
			LevelRightSeparator:    "]",
			FieldKeyValueSeparator: ": ",
		},
	})
	assert.Equal(t, "[INF] m a: 1", got)
}

func TestFormatRecordAppendsToExistingBuffer(t *testing.T) {
	rec, ok := ParseRecord([]byte(`{"msg":"m"}`))
	require.True(t, ok)
	f := NewRecordFormatter(PlainTheme(), NewTimeFormatter(DefaultTimeLayout), FormatterOptions{})

	var b Buffer
	b.WriteString("before|")
	f.FormatRecord(&b, rec)
	assert.Equal(t, "before|m", string(b.B))
}

func TestRawRecordFormatter(t *testing.T) {
	rec := &Record{Source: []byte(`{"msg":"m"}`)}
	var b Buffer
	RawRecordFormatter{}.FormatRecord(&b, rec)
	assert.Equal(t, `{"msg":"m"}`, string(b.B))
}
