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

// Command prism reads JSON log lines from stdin or files and renders each as
// one compact, colorized line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"prism"
)

var version = "dev"

const maxLineSize = 4 * 1024 * 1024

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prism: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	flatten     bool
	hideEmpty   bool
	alwaysTime  bool
	alwaysLevel bool
	raw         bool
	noUnescape  bool
	color       string
	timeFormat  string
	hide        []string
	configPath  string
}

func newRootCmd() *cobra.Command {
	var opts options

	v := viper.New()
	v.SetEnvPrefix("PRISM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "prism [file...]",
		Short:   "Prettify JSON log streams for human eyes",
		Long:    "prism reads JSON log lines from stdin or files and renders each record\nas one compact, colorized line: time, level, logger, message, fields.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			// Environment variables (PRISM_COLOR, PRISM_TIME_FORMAT, ...) fill
			// in for flags left at their defaults.
			opts.flatten = v.GetBool("flatten")
			opts.hideEmpty = v.GetBool("hide-empty")
			opts.alwaysTime = v.GetBool("always-time")
			opts.alwaysLevel = v.GetBool("always-level")
			opts.raw = v.GetBool("raw")
			opts.noUnescape = v.GetBool("no-unescape")
			opts.color = v.GetString("color")
			opts.timeFormat = v.GetString("time-format")
			if opts.configPath == "" {
				opts.configPath = v.GetString("config")
			}
			return run(&opts, args)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&opts.flatten, "flatten", false, "render nested objects as dot-joined top-level keys")
	fl.BoolVar(&opts.hideEmpty, "hide-empty", false, "skip fields with empty values")
	fl.BoolVar(&opts.alwaysTime, "always-time", false, "emit a placeholder when a record has no timestamp")
	fl.BoolVar(&opts.alwaysLevel, "always-level", false, "emit a placeholder when a record has no level")
	fl.BoolVar(&opts.raw, "raw", false, "pass records through without formatting")
	fl.BoolVar(&opts.noUnescape, "no-unescape", false, "emit string values with their original escapes")
	fl.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	fl.StringVar(&opts.timeFormat, "time-format", prism.DefaultTimeLayout, "timestamp layout in Go reference time notation")
	fl.StringArrayVar(&opts.hide, "hide", nil, "hide a field by dotted path; prefix with '!' to show again")
	fl.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	return cmd
}

func run(opts *options, args []string) error {
	var cfg *prism.Config
	if opts.configPath != "" {
		var err error
		cfg, err = prism.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}

	formatter, err := buildFormatter(opts, cfg)
	if err != nil {
		return err
	}

	pump := prism.NewPump(os.Stdout, 1024)
	if err := pumpInputs(args, formatter, pump); err != nil {
		pump.Stop()
		return err
	}
	return pump.Stop()
}

func buildFormatter(opts *options, cfg *prism.Config) (prism.LineFormatter, error) {
	if opts.raw {
		return prism.RawRecordFormatter{}, nil
	}

	theme, err := buildTheme(opts, cfg)
	if err != nil {
		return nil, err
	}

	fopts := prism.FormatterOptions{
		HideEmptyFields:   opts.hideEmpty,
		Flatten:           opts.flatten,
		AlwaysShowTime:    opts.alwaysTime,
		AlwaysShowLevel:   opts.alwaysLevel,
		NoFieldUnescaping: opts.noUnescape,
	}

	filter := prism.NewKeyFilter()
	if cfg != nil {
		filter = cfg.Filter()
		fopts.Punctuation = cfg.Punct()
	}
	for _, rule := range opts.hide {
		if rest, ok := strings.CutPrefix(rule, "!"); ok {
			filter.EntryPath(rest).Include()
		} else {
			filter.EntryPath(rule).Exclude()
		}
	}
	fopts.Fields = filter

	ts := prism.NewTimeFormatter(opts.timeFormat)
	return prism.NewRecordFormatter(theme, ts, fopts), nil
}

func buildTheme(opts *options, cfg *prism.Config) (*prism.Theme, error) {
	colored := false
	switch opts.color {
	case "always":
		// Styling is computed up front, so the profile must be forced before
		// the theme renders its prefixes.
		lipgloss.SetColorProfile(termenv.ANSI256)
		colored = true
	case "never":
	case "auto", "":
		colored = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return nil, fmt.Errorf("invalid --color value %q (want auto, always or never)", opts.color)
	}
	if !colored {
		return prism.PlainTheme(), nil
	}

	styles := prism.DefaultStyles()
	if cfg != nil {
		styles = cfg.Styles()
	}
	return prism.NewTheme(styles), nil
}

func pumpInputs(args []string, formatter prism.LineFormatter, pump *prism.Pump) error {
	if len(args) == 0 {
		return pumpStream(os.Stdin, formatter, pump)
	}
	for _, path := range args {
		if path == "-" {
			if err := pumpStream(os.Stdin, formatter, pump); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = pumpStream(f, formatter, pump)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func pumpStream(r io.Reader, formatter prism.LineFormatter, pump *prism.Pump) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		buf := prism.GetBuffer()

		if rec, ok := prism.ParseRecord(line); ok {
			formatter.FormatRecord(buf, rec)
		} else {
			// Not a JSON object: pass the line through untouched.
			buf.B = append(buf.B, line...)
		}
		buf.WriteByte('\n')
		pump.Submit(buf)
	}
	return scanner.Err()
}
