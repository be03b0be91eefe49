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
	"bytes"
	"errors"
	"fmt"
)

// Level is the severity carried by an incoming record. A viewer renders what
// arrived; there is no minimum-level gate here.
type Level int8

const (
	// LevelNone marks a record that carried no recognizable level.
	LevelNone Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
)

// Token returns the fixed 3-byte rendering of the level, or "" for LevelNone.
func (l Level) Token() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarning:
		return "WRN"
	case LevelError:
		return "ERR"
	}
	return ""
}

// String returns the lowercase ASCII representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// MarshalText serializes the Level to text.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText deserializes text into a Level.
//
// It accepts the spellings commonly seen in real log streams, in lowercase or
// uppercase (e.g. "warn", "WARNING", "err"). This facilitates configuring
// levels via YAML as well as mapping incoming records.
func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *Level) unmarshalText(text []byte) bool {
	switch string(text) {
	case "debug", "dbg", "trace":
		*l = LevelDebug
	case "info", "information", "notice":
		*l = LevelInfo
	case "warn", "warning", "wrn":
		*l = LevelWarning
	case "error", "err", "fatal", "critical", "panic":
		*l = LevelError
	default:
		return false
	}
	return true
}

// ParseLevel converts a string into a Level.
func ParseLevel(text string) (Level, error) {
	var l Level
	err := l.UnmarshalText([]byte(text))
	return l, err
}
