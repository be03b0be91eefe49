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

import "time"

// DefaultTimeLayout is the standard timestamp layout: two-digit year, date,
// and millisecond wall clock, 21 columns wide.
const DefaultTimeLayout = "06-01-02 15:04:05.000"

var _smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendInt appends an integer to a byte slice, zero padded to the specified width.
func appendInt(b []byte, v int, width int) []byte {
	u := uint(v)
	if width == 2 && u < 100 {
		i := u * 2
		return append(b, _smallsString[i], _smallsString[i+1])
	}

	if u == 0 && width <= 1 {
		return append(b, '0')
	}

	// Assemble decimal in reverse order.
	var buf [20]byte
	i := len(buf)
	for u > 0 || width > 0 {
		i--
		q := u / 10
		buf[i] = byte('0' + u - q*10)
		u = q
		width--
	}
	return append(b, buf[i:]...)
}

// appendTime formats a time.Time value and appends it to a byte slice.
//
// It uses a custom, zero allocation encoder for the default layout and falls
// back to the standard library for anything else.
func appendTime(b []byte, t time.Time, layout string) []byte {
	if layout != DefaultTimeLayout {
		return t.AppendFormat(b, layout)
	}

	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	i := uint(year%100) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')

	i = uint(month) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '-')

	i = uint(day) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, ' ')

	i = uint(hour) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, ':')

	i = uint(min) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, ':')

	i = uint(sec) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])
	b = append(b, '.')

	return appendInt(b, t.Nanosecond()/1e6, 3)
}

// TimeFormatter renders record timestamps in a fixed layout and knows its
// maximum rendered width for padding and placeholder sizing. It is immutable
// after construction and safely shared.
type TimeFormatter struct {
	layout string
	width  int
}

func NewTimeFormatter(layout string) *TimeFormatter {
	ref := time.Date(2024, time.December, 28, 23, 59, 59, 987654321, time.UTC)
	return &TimeFormatter{
		layout: layout,
		width:  len(ref.Format(layout)),
	}
}

// MaxWidth returns the widest rendering the layout can produce.
func (f *TimeFormatter) MaxWidth() int {
	return f.width
}

// Format appends the rendered time to buf.
func (f *TimeFormatter) Format(buf *Buffer, t time.Time) {
	buf.B = appendTime(buf.B, t, f.layout)
}

// Reformat parses raw RFC3339 timestamp bytes and renders them in the
// configured layout, reporting whether the bytes were parseable.
func (f *TimeFormatter) Reformat(buf *Buffer, raw string) bool {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return false
	}
	f.Format(buf, t)
	return true
}
