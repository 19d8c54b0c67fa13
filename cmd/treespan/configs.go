package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treespan/treespan/mapper"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='highlight spans in color'"`

	Lang string

	Main *cli.Command
}

func (cfg *MainConfig) langOpt(cc *cli.Context, a string) (any, error) {
	cfg.Lang = a
	return a, nil
}

// selectMapper resolves the mapper from the -l override or the file name.
func (cfg *MainConfig) selectMapper(file string) (mapper.Mapper, error) {
	m, ok := mapper.Select(cfg.Lang, file)
	if !ok {
		return nil, fmt.Errorf("no mapper for %q", file)
	}
	return m, nil
}

// colorize reports whether output should be colorized: forced by -color,
// otherwise on when writing to a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type AtConfig struct {
	*MainConfig
	At *cli.Command
}

type SpanConfig struct {
	*MainConfig
	Span *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Tree *cli.Command
}

type SniffConfig struct {
	*MainConfig
	Sniff *cli.Command
}

func readInput(cc *cli.Context, file string) (string, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", file, err)
	}
	return string(d), nil
}
