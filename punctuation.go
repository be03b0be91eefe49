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

// Punctuation is the fixed set of separator byte strings the formatter emits
// between elements. Zero values fall back to the defaults.
type Punctuation struct {
	LevelLeftSeparator      string
	LevelRightSeparator     string
	LoggerNameSeparator     string
	FieldKeyValueSeparator  string
	ArraySeparator          string
	HiddenFieldsIndicator   string
	SourceLocationSeparator string
}

// DefaultPunctuation returns the standard separators.
func DefaultPunctuation() Punctuation {
	return Punctuation{
		LevelLeftSeparator:      "|",
		LevelRightSeparator:     "|",
		LoggerNameSeparator:     ":",
		FieldKeyValueSeparator:  "=",
		ArraySeparator:          " ",
		HiddenFieldsIndicator:   " ...",
		SourceLocationSeparator: "@ ",
	}
}

// merged fills zero-valued separators from the defaults.
func (p Punctuation) merged() Punctuation {
	def := DefaultPunctuation()
	if p.LevelLeftSeparator == "" {
		p.LevelLeftSeparator = def.LevelLeftSeparator
	}
	if p.LevelRightSeparator == "" {
		p.LevelRightSeparator = def.LevelRightSeparator
	}
	if p.LoggerNameSeparator == "" {
		p.LoggerNameSeparator = def.LoggerNameSeparator
	}
	if p.FieldKeyValueSeparator == "" {
		p.FieldKeyValueSeparator = def.FieldKeyValueSeparator
	}
	if p.ArraySeparator == "" {
		p.ArraySeparator = def.ArraySeparator
	}
	if p.HiddenFieldsIndicator == "" {
		p.HiddenFieldsIndicator = def.HiddenFieldsIndicator
	}
	if p.SourceLocationSeparator == "" {
		p.SourceLocationSeparator = def.SourceLocationSeparator
	}
	return p
}
