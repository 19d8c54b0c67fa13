package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func at(cfg *AtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.At.Parse(cc, args)
	if err != nil {
		cfg.At.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: at requires <file> <offset>", cli.ErrUsage)
	}
	file := args[0]
	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid offset %q", cli.ErrUsage, args[1])
	}
	text, err := readInput(cc, file)
	if err != nil {
		return err
	}
	m, err := cfg.selectMapper(file)
	if err != nil {
		return err
	}
	ptr, ok := m.PointerAt(text, offset)
	if !ok {
		return fmt.Errorf("no address at offset %d in %q", offset, file)
	}
	_, err = fmt.Fprintln(cc.Out, ptr.String())
	return err
}
