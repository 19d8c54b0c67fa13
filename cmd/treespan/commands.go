package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "l",
		Aliases:     []string{"lang"},
		Description: "language id (default: derived from the file extension)",
		Type:        cli.NamedFuncOpt(cfg.langOpt, "(language)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treespan").
		WithSynopsis("treespan [opts] command [opts]").
		WithDescription("treespan maps cursor offsets in structured-data files to structural addresses and back.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tsMain(cfg, cc, args)
		}).
		WithSubs(
			AtCommand(cfg),
			SpanCommand(cfg),
			TreeCommand(cfg),
			SniffCommand(cfg))
}

func tsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func AtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("at").
		WithAliases("a").
		WithSynopsis("at <file> <offset>").
		WithDescription("print the structural address at a cursor offset").
		WithRun(func(cc *cli.Context, args []string) error {
			return at(cfg, cc, args)
		})
	cfg.At = cmd
	return cmd
}

func SpanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SpanConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("span").
		WithAliases("s").
		WithSynopsis("span <file> <address>").
		WithDescription("print the text range a structural address occupies").
		WithRun(func(cc *cli.Context, args []string) error {
			return span(cfg, cc, args)
		})
	cfg.Span = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithSynopsis("tree <file>").
		WithDescription("dump the tolerant parse tree with spans").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func SniffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SniffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sniff").
		WithSynopsis("sniff <file>").
		WithDescription("report the detected field separator and candidate scores").
		WithRun(func(cc *cli.Context, args []string) error {
			return sniff(cfg, cc, args)
		})
	cfg.Sniff = cmd
	return cmd
}
