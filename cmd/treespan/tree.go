package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/treespan/treespan/ast"
	"github.com/treespan/treespan/parse"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: tree requires <file>", cli.ErrUsage)
	}
	text, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	root := parse.Parse(text)
	if root == nil {
		return fmt.Errorf("no value found in %q", args[0])
	}
	dumpNode(cc.Out, root, 0)
	return nil
}

func dumpNode(w io.Writer, node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	sp := node.Span()
	switch n := node.(type) {
	case *ast.Object:
		fmt.Fprintf(w, "%sobject [%d,%d)\n", indent, sp.Start, sp.End)
		for _, prop := range n.Properties {
			dumpNode(w, prop, depth+1)
		}
	case *ast.Array:
		fmt.Fprintf(w, "%sarray [%d,%d)\n", indent, sp.Start, sp.End)
		for _, item := range n.Items {
			dumpNode(w, item, depth+1)
		}
	case *ast.Property:
		key, _ := n.Key.StringValue()
		fmt.Fprintf(w, "%sproperty %q [%d,%d)\n", indent, key, sp.Start, sp.End)
		if n.Value != nil {
			dumpNode(w, n.Value, depth+1)
		}
	case *ast.Scalar:
		fmt.Fprintf(w, "%s%s %v [%d,%d)\n", indent, n.Kind, n.Value, sp.Start, sp.End)
	}
}
