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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
punctuation:
  level-left: "["
  level-right: "]"
fields:
  hide:
    - secret
    - ctx.trace
  show:
    - secret.id
theme:
  key:
    fg: "2"
    bold: true
  message:
    fg: "#ffcc00"
levels:
  error:
    fg: "9"
    bold: true
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	p := cfg.Punct()
	assert.Equal(t, "[", p.LevelLeftSeparator)
	assert.Equal(t, "]", p.LevelRightSeparator)
	// Unset separators keep their defaults.
	assert.Equal(t, "=", p.FieldKeyValueSeparator)
	assert.Equal(t, " ...", p.HiddenFieldsIndicator)

	f := cfg.Filter()
	require.NotNil(t, f.Get("secret"))
	assert.Equal(t, SettingExclude, f.Get("secret").Setting())
	assert.Equal(t, SettingInclude, f.Get("secret").Get("id").Setting())
	assert.Equal(t, SettingExclude, f.Get("ctx").Get("trace").Setting())
}

func TestParseConfigStyles(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	s := cfg.Styles()
	assert.True(t, s.Key.GetBold())
	assert.True(t, s.Levels[LevelError].GetBold())
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPunctuation(), cfg.Punct())
	assert.True(t, cfg.Filter().Leaf())
}

func TestParseConfigUnknownElement(t *testing.T) {
	_, err := ParseConfig([]byte("theme:\n  nonsense:\n    fg: \"1\"\n"))
	assert.Error(t, err)
}

func TestParseConfigUnknownLevel(t *testing.T) {
	_, err := ParseConfig([]byte("levels:\n  verbose:\n    fg: \"1\"\n"))
	assert.Error(t, err)
}

func TestParseConfigInvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte(":\n  - ["))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "[", cfg.Punct().LevelLeftSeparator)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
