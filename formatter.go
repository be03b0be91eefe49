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

// LineFormatter renders one record by appending to a caller-supplied buffer.
// Implementations never truncate or inspect prior buffer contents.
type LineFormatter interface {
	FormatRecord(buf *Buffer, rec *Record)
}

// RawRecordFormatter appends a record's original source bytes verbatim, for
// the no-formatting mode.
type RawRecordFormatter struct{}

func (RawRecordFormatter) FormatRecord(buf *Buffer, rec *Record) {
	buf.B = append(buf.B, rec.Source...)
}

// FormatterOptions configures a RecordFormatter.
type FormatterOptions struct {
	// HideEmptyFields skips fields whose value is an empty string, {}, [] or null.
	HideEmptyFields bool

	// Flatten renders nested object fields as dot-joined top-level keys
	// instead of nested braces.
	Flatten bool

	// AlwaysShowTime emits a centered dash placeholder when a record has no
	// timestamp.
	AlwaysShowTime bool

	// AlwaysShowLevel emits a (?) placeholder when a record has no level.
	AlwaysShowLevel bool

	// NoFieldUnescaping emits string values as their original raw escaped
	// bytes with no quote-selection logic at all.
	NoFieldUnescaping bool

	// Fields filters field visibility by dotted path. Nil passes everything.
	Fields *KeyFilter

	// Punctuation overrides individual separator byte strings.
	Punctuation Punctuation
}

// RecordFormatter renders records as single compact lines: time, level,
// logger, message, fields and caller, in that order, each optional. It is
// immutable after construction and safely shared across concurrent callers,
// each supplying its own output buffer.
type RecordFormatter struct {
	theme           *Theme
	tsFormatter     *TimeFormatter
	tsWidth         int
	unescapeFields  bool
	hideEmptyFields bool
	flatten         bool
	alwaysShowTime  bool
	alwaysShowLevel bool
	fields          *KeyFilter
	punctuation     Punctuation
}

func NewRecordFormatter(theme *Theme, ts *TimeFormatter, opts FormatterOptions) *RecordFormatter {
	fields := opts.Fields
	if fields == nil {
		fields = NewKeyFilter()
	}
	return &RecordFormatter{
		theme:           theme,
		tsFormatter:     ts,
		tsWidth:         ts.MaxWidth(),
		unescapeFields:  !opts.NoFieldUnescaping,
		hideEmptyFields: opts.HideEmptyFields,
		flatten:         opts.Flatten,
		alwaysShowTime:  opts.AlwaysShowTime,
		alwaysShowLevel: opts.AlwaysShowLevel,
		fields:          fields,
		punctuation:     opts.Punctuation.merged(),
	}
}

// formattingState is the per-record mutable context: the separator gate, the
// live flatten flag and the key-path buffer. It lives for one FormatRecord
// call.
type formattingState struct {
	keyPrefix keyPrefix
	flatten   bool
	empty     bool
}

// addElement invokes sep before every element except the very first.
func (fs *formattingState) addElement(sep func()) {
	if fs.empty {
		fs.empty = false
	} else if sep != nil {
		sep()
	}
}

func (f *RecordFormatter) FormatRecord(buf *Buffer, rec *Record) {
	fs := formattingState{flatten: f.flatten && f.unescapeFields, empty: true}

	f.theme.apply(buf, rec.Level, func(s *styler) {
		f.formatTime(s, &fs, rec)
		f.formatLevel(s, &fs, rec)

		if rec.Logger != "" {
			fs.addElement(func() { s.space() })
			s.element(ElementLogger, func(s *styler) {
				s.element(ElementLoggerInner, func(s *styler) {
					s.batch(func(b *Buffer) { b.WriteString(rec.Logger) })
				})
				s.batch(func(b *Buffer) { b.WriteString(f.punctuation.LoggerNameSeparator) })
			})
		}

		f.formatMessage(s, &fs, rec.Message)

		someFieldsHidden := false
		for i := range rec.Fields {
			fld := &rec.Fields[i]
			if f.hideEmptyFields && fld.Value.IsEmpty() {
				continue
			}
			if !f.formatField(s, fld.Key, fld.Value, &fs, f.fields) {
				someFieldsHidden = true
			}
		}
		if someFieldsHidden {
			s.element(ElementEllipsis, func(s *styler) {
				s.batch(func(b *Buffer) { b.WriteString(f.punctuation.HiddenFieldsIndicator) })
			})
		}

		if rec.Caller.IsSet() {
			s.element(ElementCaller, func(s *styler) {
				s.batch(func(b *Buffer) {
					b.WriteByte(' ')
					b.WriteString(f.punctuation.SourceLocationSeparator)
				})
				s.element(ElementCallerInner, func(s *styler) {
					s.batch(func(b *Buffer) {
						if rec.Caller.File != "" {
							b.WriteString(rec.Caller.File)
							if rec.Caller.Line != "" {
								b.WriteByte(':')
								b.WriteString(rec.Caller.Line)
							}
						} else {
							b.WriteString(rec.Caller.Text)
						}
					})
				})
			})
		}
	})
}

func (f *RecordFormatter) formatTime(s *styler, fs *formattingState, rec *Record) {
	if !rec.Time.IsZero() {
		fs.addElement(nil)
		s.element(ElementTime, func(s *styler) {
			s.batch(func(b *Buffer) {
				alignedLeft(b, f.tsWidth, ' ', func(b *Buffer) {
					if f.tsFormatter.Reformat(b, rec.Time.Raw()) {
						return
					}
					if t, ok := rec.Time.Parse(); ok {
						f.tsFormatter.Format(b, t)
					} else {
						b.WriteString(rec.Time.Raw())
					}
				})
			})
		})
	} else if f.alwaysShowTime {
		fs.addElement(nil)
		s.element(ElementTime, func(s *styler) {
			s.batch(func(b *Buffer) {
				centered(b, f.tsWidth, '-', func(b *Buffer) {
					b.WriteByte('-')
				})
			})
		})
	}
}

func (f *RecordFormatter) formatLevel(s *styler, fs *formattingState, rec *Record) {
	token := rec.Level.Token()
	if token == "" && f.alwaysShowLevel {
		token = "(?)"
	}
	if token == "" {
		return
	}
	fs.addElement(func() { s.space() })
	s.element(ElementLevel, func(s *styler) {
		s.batch(func(b *Buffer) { b.WriteString(f.punctuation.LevelLeftSeparator) })
		s.element(ElementLevelInner, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteString(token) })
		})
		s.batch(func(b *Buffer) { b.WriteString(f.punctuation.LevelRightSeparator) })
	})
}

func (f *RecordFormatter) formatMessage(s *styler, fs *formattingState, value RawValue) {
	switch value.Kind() {
	case KindNone:
		s.reset()
	case KindString:
		if value.Str().IsEmpty() {
			return
		}
		fs.addElement(func() {
			s.reset()
			s.space()
		})
		s.element(ElementMessage, func(s *styler) {
			s.batch(func(b *Buffer) {
				b.withAutoTrim(func() { formatMessageAuto(b, value.Str()) })
			})
		})
	default:
		f.formatField(s, "msg", value, fs, f.fields)
	}
}

func (f *RecordFormatter) formatField(s *styler, key string, value RawValue, fs *formattingState, filter *KeyFilter) bool {
	ff := fieldFormatter{rf: f}
	return ff.format(s, key, value, fs, filter, SettingUnspecified)
}

// fieldFormatter renders one field and its nested values, consulting the
// filter tree per field.
type fieldFormatter struct {
	rf *RecordFormatter
}

// format renders (key, value) under the given filter node and inherited
// setting. It reports false when the field was suppressed by the filter so
// the enclosing scope can emit a hidden-fields indicator.
func (ff *fieldFormatter) format(s *styler, key string, value RawValue, fs *formattingState, filter *KeyFilter, setting FilterSetting) bool {
	leaf := true
	if filter != nil {
		setting = setting.Apply(filter.Setting())
		if child := filter.Get(key); child != nil {
			filter = child
			setting = setting.Apply(child.Setting())
			leaf = child.Leaf()
		} else {
			filter = nil
		}
	}
	if setting == SettingExclude && leaf {
		return false
	}

	v := ff.begin(s, key, value, fs)
	if ff.rf.unescapeFields {
		ff.formatValue(s, value, fs, filter, setting, false)
	} else {
		s.element(ElementString, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteString(value.Source()) })
		})
	}
	ff.end(fs, v)
	return true
}

// formatValue renders a value of any kind. nested marks array elements, which
// follow the reduced quoting rules and are never filtered.
func (ff *fieldFormatter) formatValue(s *styler, value RawValue, fs *formattingState, filter *KeyFilter, setting FilterSetting, nested bool) {
	if value.Kind() == KindString && value.Str().IsRaw() {
		value = AutoValue(value.Str().Source())
	}

	switch value.Kind() {
	case KindString:
		s.element(ElementString, func(s *styler) {
			s.batch(func(b *Buffer) {
				b.withAutoTrim(func() { formatValueAuto(b, value.Str(), nested) })
			})
		})
	case KindNumber:
		s.element(ElementNumber, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteString(value.Source()) })
		})
	case KindBoolean:
		s.element(ElementBoolean, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteString(value.Source()) })
		})
	case KindNull, KindNone:
		s.element(ElementNull, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteString("null") })
		})
	case KindObject:
		fields, err := value.ParseObject()
		if err != nil {
			ff.formatRawSpan(s, value)
			return
		}
		s.element(ElementObject, func(s *styler) {
			if !fs.flatten {
				s.batch(func(b *Buffer) { b.WriteByte('{') })
			}
			someFieldsHidden := false
			for i := range fields {
				if !ff.format(s, fields[i].Key, fields[i].Value, fs, filter, setting) {
					someFieldsHidden = true
				}
			}
			if someFieldsHidden {
				s.element(ElementEllipsis, func(s *styler) {
					s.batch(func(b *Buffer) { b.WriteString(ff.rf.punctuation.HiddenFieldsIndicator) })
				})
			}
			if !fs.flatten {
				s.batch(func(b *Buffer) {
					if len(fields) != 0 {
						b.WriteByte(' ')
					}
					b.WriteByte('}')
				})
			}
		})
	case KindArray:
		items, err := value.ParseArray()
		if err != nil {
			ff.formatRawSpan(s, value)
			return
		}
		s.element(ElementArray, func(s *styler) {
			s.batch(func(b *Buffer) { b.WriteByte('[') })
			for i := range items {
				if i != 0 {
					s.batch(func(b *Buffer) { b.WriteString(ff.rf.punctuation.ArraySeparator) })
				}
				ff.formatValue(s, items[i], fs, nil, SettingUnspecified, true)
			}
			s.batch(func(b *Buffer) { b.WriteByte(']') })
		})
	}
}

// formatRawSpan emits a malformed nested span verbatim instead of aborting
// the record.
func (ff *fieldFormatter) formatRawSpan(s *styler, value RawValue) {
	s.element(ElementString, func(s *styler) {
		s.batch(func(b *Buffer) { b.WriteString(value.Source()) })
	})
}

// formattedFieldVariant is the marker begin hands to end so restoration is
// exact on every exit path.
type formattedFieldVariant struct {
	flattened bool
	pushed    int
	flatten   bool
}

// begin starts a field: under flatten mode an object-valued field only pushes
// its key onto the path buffer; any other field emits its (possibly prefixed)
// key and the key/value separator, disabling flatten for the value.
func (ff *fieldFormatter) begin(s *styler, key string, value RawValue, fs *formattingState) formattedFieldVariant {
	if fs.flatten && value.Kind() == KindObject {
		return formattedFieldVariant{flattened: true, pushed: fs.keyPrefix.Push(key)}
	}

	v := formattedFieldVariant{flatten: fs.flatten}

	fs.addElement(func() { s.space() })
	s.element(ElementKey, func(s *styler) {
		s.batch(func(b *Buffer) {
			if fs.flatten {
				fs.flatten = false
				if fs.keyPrefix.Len() != 0 {
					fs.keyPrefix.AppendTo(b)
					b.WriteByte('.')
				}
			}
			prettifyKey(b, key)
		})
	})
	s.element(ElementField, func(s *styler) {
		s.batch(func(b *Buffer) { b.WriteString(ff.rf.punctuation.FieldKeyValueSeparator) })
	})

	return v
}

// end restores whichever flatten-mode or key-path state existed before begin.
func (ff *fieldFormatter) end(fs *formattingState, v formattedFieldVariant) {
	if v.flattened {
		fs.keyPrefix.Pop(v.pushed)
	} else {
		fs.flatten = v.flatten
	}
}

// alignedLeft runs f and pads the written span with pad bytes up to width.
func alignedLeft(b *Buffer, width int, pad byte, f func(*Buffer)) {
	begin := len(b.B)
	f(b)
	for len(b.B)-begin < width {
		b.B = append(b.B, pad)
	}
}

// centered runs f and pads the written span with pad bytes on both sides up
// to width.
func centered(b *Buffer, width int, pad byte, f func(*Buffer)) {
	begin := len(b.B)
	f(b)
	n := len(b.B) - begin
	if n >= width {
		return
	}
	left := (width - n) / 2
	right := width - n - left
	for i := 0; i < left+right; i++ {
		b.B = append(b.B, pad)
	}
	copy(b.B[begin+left:], b.B[begin:begin+n])
	for i := 0; i < left; i++ {
		b.B[begin+i] = pad
	}
}
