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

import "strings"

// FilterSetting is the include/exclude state a filter node contributes.
type FilterSetting uint8

const (
	SettingUnspecified FilterSetting = iota
	SettingInclude
	SettingExclude
)

// Apply composes an inherited setting with a more specific one. An explicit
// child value wins; Unspecified never overrides an explicit ancestor value.
func (s FilterSetting) Apply(child FilterSetting) FilterSetting {
	if child == SettingUnspecified {
		return s
	}
	return child
}

// KeyFilter is a hierarchical include/exclude policy over field-name paths.
// It is constructed once from configuration and shared read-only across all
// records. A node with no children is a leaf; exclusion resolved at a leaf
// fully drops the field.
type KeyFilter struct {
	setting  FilterSetting
	children map[string]*KeyFilter
}

// NewKeyFilter returns an empty filter that passes every field through.
func NewKeyFilter() *KeyFilter {
	return &KeyFilter{}
}

func (f *KeyFilter) Setting() FilterSetting {
	return f.setting
}

func (f *KeyFilter) Leaf() bool {
	return len(f.children) == 0
}

// Get returns the child node for key, or nil. Lookups use the original,
// unprettified key.
func (f *KeyFilter) Get(key string) *KeyFilter {
	return f.children[key]
}

// Entry returns the child node for key, creating it when absent.
func (f *KeyFilter) Entry(key string) *KeyFilter {
	if child, ok := f.children[key]; ok {
		return child
	}
	if f.children == nil {
		f.children = map[string]*KeyFilter{}
	}
	child := &KeyFilter{}
	f.children[key] = child
	return child
}

// EntryPath descends along a dotted path, creating nodes as needed.
func (f *KeyFilter) EntryPath(path string) *KeyFilter {
	node := f
	for path != "" {
		key := path
		if i := strings.IndexByte(path, '.'); i >= 0 {
			key, path = path[:i], path[i+1:]
		} else {
			path = ""
		}
		node = node.Entry(key)
	}
	return node
}

// Include marks the node (and, by inheritance, its subtree) visible.
func (f *KeyFilter) Include() *KeyFilter {
	f.setting = SettingInclude
	return f
}

// Exclude marks the node (and, by inheritance, its subtree) hidden.
func (f *KeyFilter) Exclude() *KeyFilter {
	f.setting = SettingExclude
	return f
}

// ParseFieldRules builds a filter from CLI-style rules: each rule is a dotted
// field path to hide, or to show again when prefixed with '!'.
func ParseFieldRules(rules []string) *KeyFilter {
	f := NewKeyFilter()
	for _, rule := range rules {
		if rest, ok := strings.CutPrefix(rule, "!"); ok {
			f.EntryPath(rest).Include()
		} else {
			f.EntryPath(rule).Exclude()
		}
	}
	return f
}
