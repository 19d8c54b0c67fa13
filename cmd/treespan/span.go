package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/treespan/treespan/pointer"
)

func span(cfg *SpanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Span.Parse(cc, args)
	if err != nil {
		cfg.Span.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: span requires <file> <address>", cli.ErrUsage)
	}
	file := args[0]
	ptr, err := pointer.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q: %w", cli.ErrUsage, args[1], err)
	}
	text, err := readInput(cc, file)
	if err != nil {
		return err
	}
	m, err := cfg.selectMapper(file)
	if err != nil {
		return err
	}
	sp, ok := m.SpanOf(text, ptr)
	if !ok {
		return fmt.Errorf("address %q not found in %q", args[1], file)
	}
	fmt.Fprintf(cc.Out, "[%d,%d)\n", sp.Start, sp.End)

	// Show the covered text in its surrounding lines.
	ctxStart := strings.LastIndexByte(text[:sp.Start], '\n') + 1
	ctxEnd := sp.End + strings.IndexByte(text[sp.End:]+"\n", '\n')
	covered := text[sp.Start:sp.End]
	if cfg.colorize(cc.Out) {
		covered = color.New(color.FgHiYellow, color.Underline).Sprint(covered)
	}
	fmt.Fprintf(cc.Out, "%s%s%s\n", text[ctxStart:sp.Start], covered, text[sp.End:ctxEnd])
	return nil
}
