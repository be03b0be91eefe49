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
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration surface: separator overrides, field
// visibility rules and the theme palette. Flags compose on top of it.
type Config struct {
	Punctuation PunctuationConfig      `yaml:"punctuation"`
	Fields      FieldsConfig           `yaml:"fields"`
	Theme       map[string]StyleConfig `yaml:"theme"`
	Levels      map[string]StyleConfig `yaml:"levels"`
}

// PunctuationConfig overrides individual separators; empty entries keep the
// defaults.
type PunctuationConfig struct {
	LevelLeft      string `yaml:"level-left"`
	LevelRight     string `yaml:"level-right"`
	Logger         string `yaml:"logger"`
	KeyValue       string `yaml:"key-value"`
	Array          string `yaml:"array"`
	HiddenFields   string `yaml:"hidden-fields"`
	SourceLocation string `yaml:"source-location"`
}

// FieldsConfig lists dotted field paths to hide or to show again.
type FieldsConfig struct {
	Hide []string `yaml:"hide"`
	Show []string `yaml:"show"`
}

// StyleConfig describes one element style.
type StyleConfig struct {
	FG        string `yaml:"fg"`
	Bold      bool   `yaml:"bold"`
	Faint     bool   `yaml:"faint"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

func (c StyleConfig) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.FG != "" {
		st = st.Foreground(lipgloss.Color(c.FG))
	}
	if c.Bold {
		st = st.Bold(true)
	}
	if c.Faint {
		st = st.Faint(true)
	}
	if c.Italic {
		st = st.Italic(true)
	}
	if c.Underline {
		st = st.Underline(true)
	}
	return st
}

// LoadConfig reads and strictly decodes a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig strictly decodes YAML config bytes; unknown keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	for name := range c.Theme {
		if _, ok := elementByName(name); !ok {
			return fmt.Errorf("parse config: unknown theme element %q", name)
		}
	}
	for name := range c.Levels {
		if _, err := ParseLevel(name); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	return nil
}

// Punct returns the configured punctuation merged over the defaults.
func (c *Config) Punct() Punctuation {
	return Punctuation{
		LevelLeftSeparator:      c.Punctuation.LevelLeft,
		LevelRightSeparator:     c.Punctuation.LevelRight,
		LoggerNameSeparator:     c.Punctuation.Logger,
		FieldKeyValueSeparator:  c.Punctuation.KeyValue,
		ArraySeparator:          c.Punctuation.Array,
		HiddenFieldsIndicator:   c.Punctuation.HiddenFields,
		SourceLocationSeparator: c.Punctuation.SourceLocation,
	}.merged()
}

// Filter builds the key filter from the hide/show rules.
func (c *Config) Filter() *KeyFilter {
	f := NewKeyFilter()
	for _, path := range c.Fields.Hide {
		f.EntryPath(path).Exclude()
	}
	for _, path := range c.Fields.Show {
		f.EntryPath(path).Include()
	}
	return f
}

// Styles applies the configured palette over the defaults.
func (c *Config) Styles() Styles {
	s := DefaultStyles()
	for name, sc := range c.Theme {
		if el, ok := elementByName(name); ok {
			s.set(el, sc.style())
		}
	}
	for name, sc := range c.Levels {
		if l, err := ParseLevel(name); err == nil {
			s.Levels[l] = sc.style()
		}
	}
	return s
}

func (s *Styles) set(el Element, st lipgloss.Style) {
	switch el {
	case ElementTime:
		s.Time = st
	case ElementLevel:
		s.Level = st
	case ElementLevelInner:
		s.LevelInner = st
	case ElementLogger:
		s.Logger = st
	case ElementLoggerInner:
		s.LoggerInner = st
	case ElementMessage:
		s.Message = st
	case ElementKey:
		s.Key = st
	case ElementField:
		s.Field = st
	case ElementString:
		s.String = st
	case ElementNumber:
		s.Number = st
	case ElementBoolean:
		s.Boolean = st
	case ElementNull:
		s.Null = st
	case ElementObject:
		s.Object = st
	case ElementArray:
		s.Array = st
	case ElementEllipsis:
		s.Ellipsis = st
	case ElementCaller:
		s.Caller = st
	case ElementCallerInner:
		s.CallerInner = st
	}
}

func elementByName(name string) (Element, bool) {
	switch name {
	case "time":
		return ElementTime, true
	case "level":
		return ElementLevel, true
	case "level-inner":
		return ElementLevelInner, true
	case "logger":
		return ElementLogger, true
	case "logger-inner":
		return ElementLoggerInner, true
	case "message":
		return ElementMessage, true
	case "key":
		return ElementKey, true
	case "field":
		return ElementField, true
	case "string":
		return ElementString, true
	case "number":
		return ElementNumber, true
	case "boolean":
		return ElementBoolean, true
	case "null":
		return ElementNull, true
	case "object":
		return ElementObject, true
	case "array":
		return ElementArray, true
	case "ellipsis":
		return ElementEllipsis, true
	case "caller":
		return ElementCaller, true
	case "caller-inner":
		return ElementCallerInner, true
	}
	return 0, false
}
