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
	"encoding/json"
	"strings"
)

// ParseRecord converts one JSON log line into a Record, keeping field order
// and duplicate keys and leaving values as lazy spans. Well-known keys map
// onto the record envelope: time/ts/timestamp, level/severity/lvl,
// logger/name, msg/message, caller/source. It reports false for lines that
// are not JSON objects; those render through RawRecordFormatter.
func ParseRecord(line []byte) (*Record, bool) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}

	rec := &Record{Source: line}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		span := string(raw)

		switch key {
		case "time", "ts", "timestamp":
			if rec.Time.IsZero() {
				rec.Time = NewTimestamp(scalarText(span))
				continue
			}
		case "level", "severity", "lvl":
			if rec.Level == LevelNone {
				if l, err := ParseLevel(scalarText(span)); err == nil {
					rec.Level = l
					continue
				}
			}
		case "logger", "name":
			if rec.Logger == "" && strings.HasPrefix(span, `"`) {
				rec.Logger = scalarText(span)
				continue
			}
		case "msg", "message":
			if rec.Message.Kind() == KindNone {
				rec.Message = ValueFromJSON(span)
				continue
			}
		case "caller", "source":
			if !rec.Caller.IsSet() && strings.HasPrefix(span, `"`) {
				rec.Caller = parseCaller(scalarText(span))
				continue
			}
		}
		rec.Fields = append(rec.Fields, Field{Key: key, Value: ValueFromJSON(span)})
	}
	return rec, true
}

// scalarText decodes a scalar span to plain text: quoted strings lose their
// quotes and escapes, numbers stay verbatim.
func scalarText(span string) string {
	if !strings.HasPrefix(span, `"`) {
		return span
	}
	if !strings.ContainsRune(span, '\\') && len(span) >= 2 {
		return span[1 : len(span)-1]
	}
	var b Buffer
	if err := decodeJSONString(plainSink{&b}, span); err != nil {
		return span
	}
	return string(b.B)
}

// parseCaller splits "file.go:42" style callers; anything else stays as text.
func parseCaller(s string) Caller {
	if i := strings.LastIndexByte(s, ':'); i > 0 && i < len(s)-1 {
		line := s[i+1:]
		numeric := true
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				numeric = false
				break
			}
		}
		if numeric {
			return Caller{File: s[:i], Line: line}
		}
	}
	return Caller{Text: s}
}
