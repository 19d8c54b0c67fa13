package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/treespan/treespan/mapper"
)

func sniff(cfg *SniffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sniff.Parse(cc, args)
	if err != nil {
		cfg.Sniff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: sniff requires <file>", cli.ErrUsage)
	}
	text, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	scores := mapper.SniffScores(text, nil)
	for _, s := range scores {
		fmt.Fprintf(cc.Out, "%-4s %.2f\n", strconv.QuoteRune(rune(s.Delim)), s.Score)
	}
	fmt.Fprintf(cc.Out, "detected: %s\n", strconv.QuoteRune(rune(mapper.Sniff(text, nil))))
	return nil
}
