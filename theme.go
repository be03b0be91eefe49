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

	"github.com/charmbracelet/lipgloss"
)

// Element tags the semantic category of every emitted token so the theme can
// style it.
type Element uint8

const (
	ElementTime Element = iota
	ElementLevel
	ElementLevelInner
	ElementLogger
	ElementLoggerInner
	ElementMessage
	ElementKey
	ElementField
	ElementString
	ElementNumber
	ElementBoolean
	ElementNull
	ElementObject
	ElementArray
	ElementEllipsis
	ElementCaller
	ElementCallerInner

	elementCount
)

// Styles defines the visual appearance of rendered records.
//
// It leverages the lipgloss library to provide rich, customizable terminal
// styling for every semantic element. Levels overrides the LevelInner style
// per record level.
type Styles struct {
	Time        lipgloss.Style
	Level       lipgloss.Style
	LevelInner  lipgloss.Style
	Logger      lipgloss.Style
	LoggerInner lipgloss.Style
	Message     lipgloss.Style
	Key         lipgloss.Style
	Field       lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Boolean     lipgloss.Style
	Null        lipgloss.Style
	Object      lipgloss.Style
	Array       lipgloss.Style
	Ellipsis    lipgloss.Style
	Caller      lipgloss.Style
	CallerInner lipgloss.Style

	Levels map[Level]lipgloss.Style
}

// DefaultStyles initializes and returns the standard styling configuration:
// a clean, color coded appearance tuned for dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Time:     lipgloss.NewStyle().Faint(true).Italic(true),
		Level:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Logger:   lipgloss.NewStyle().Faint(true),
		Message:  lipgloss.NewStyle().Bold(true),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Field:    lipgloss.NewStyle().Faint(true),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Boolean:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Null:     lipgloss.NewStyle().Faint(true),
		Object:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Array:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Ellipsis: lipgloss.NewStyle().Faint(true),
		Caller:   lipgloss.NewStyle().Faint(true).Italic(true),
		Levels: map[Level]lipgloss.Style{
			LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
	}
}

// Theme turns semantic elements into styling byte sequences. It is immutable
// after construction and safely shared across concurrent format calls.
type Theme struct {
	prefixes      [elementCount]string
	levelPrefixes map[Level]string
	colored       bool
}

// NewTheme precomputes the ANSI prefix of every element style so the hot path
// never renders through lipgloss per token.
func NewTheme(s Styles) *Theme {
	t := &Theme{}
	t.prefixes[ElementTime] = stylePrefix(s.Time)
	t.prefixes[ElementLevel] = stylePrefix(s.Level)
	t.prefixes[ElementLevelInner] = stylePrefix(s.LevelInner)
	t.prefixes[ElementLogger] = stylePrefix(s.Logger)
	t.prefixes[ElementLoggerInner] = stylePrefix(s.LoggerInner)
	t.prefixes[ElementMessage] = stylePrefix(s.Message)
	t.prefixes[ElementKey] = stylePrefix(s.Key)
	t.prefixes[ElementField] = stylePrefix(s.Field)
	t.prefixes[ElementString] = stylePrefix(s.String)
	t.prefixes[ElementNumber] = stylePrefix(s.Number)
	t.prefixes[ElementBoolean] = stylePrefix(s.Boolean)
	t.prefixes[ElementNull] = stylePrefix(s.Null)
	t.prefixes[ElementObject] = stylePrefix(s.Object)
	t.prefixes[ElementArray] = stylePrefix(s.Array)
	t.prefixes[ElementEllipsis] = stylePrefix(s.Ellipsis)
	t.prefixes[ElementCaller] = stylePrefix(s.Caller)
	t.prefixes[ElementCallerInner] = stylePrefix(s.CallerInner)
	if len(s.Levels) > 0 {
		t.levelPrefixes = make(map[Level]string, len(s.Levels))
		for l, st := range s.Levels {
			t.levelPrefixes[l] = stylePrefix(st)
		}
	}
	for _, p := range t.prefixes {
		if p != "" {
			t.colored = true
		}
	}
	for _, p := range t.levelPrefixes {
		if p != "" {
			t.colored = true
		}
	}
	return t
}

// DefaultTheme returns the colorized default theme.
func DefaultTheme() *Theme {
	return NewTheme(DefaultStyles())
}

// PlainTheme emits no styling bytes at all.
func PlainTheme() *Theme {
	return &Theme{}
}

// stylePrefix extracts the ANSI sequence a style emits before its content.
// With color output disabled lipgloss renders the marker unchanged and the
// prefix comes out empty.
func stylePrefix(st lipgloss.Style) string {
	const marker = "\x00"
	r := st.Render(marker)
	i := strings.Index(r, marker)
	if i <= 0 {
		return ""
	}
	return r[:i]
}

func (t *Theme) prefixFor(el Element, level Level) string {
	if el == ElementLevelInner && t.levelPrefixes != nil {
		if p, ok := t.levelPrefixes[level]; ok && p != "" {
			return p
		}
	}
	return t.prefixes[el]
}

const sgrReset = "\x1b[0m"

// apply runs one record's emission against a styler and resets styling at the
// record boundary.
func (t *Theme) apply(buf *Buffer, level Level, f func(*styler)) {
	s := styler{buf: buf, theme: t, level: level}
	f(&s)
	s.reset()
}

// styler is the styling sink: elements push their style, batches append raw
// bytes, and closing an element restores the enclosing style. One styler
// lives per format call; it is never shared.
type styler struct {
	buf    *Buffer
	theme  *Theme
	level  Level
	stack  []string
	active bool
}

func (s *styler) element(el Element, f func(*styler)) {
	p := s.theme.prefixFor(el, s.level)
	s.stack = append(s.stack, p)
	if p != "" {
		s.buf.WriteString(p)
		s.active = true
	}
	f(s)
	s.stack = s.stack[:len(s.stack)-1]
	if p != "" {
		s.buf.WriteString(sgrReset)
		s.active = false
		for i := len(s.stack) - 1; i >= 0; i-- {
			if s.stack[i] != "" {
				s.buf.WriteString(s.stack[i])
				s.active = true
				break
			}
		}
	}
}

func (s *styler) batch(f func(*Buffer)) {
	f(s.buf)
}

func (s *styler) space() {
	s.buf.WriteByte(' ')
}

func (s *styler) reset() {
	if s.active {
		s.buf.WriteString(sgrReset)
		s.active = false
	}
}
