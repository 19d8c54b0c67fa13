// Package debug gates optional stderr diagnostics by environment variable.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Resolve bool
	Sniff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TREESPAN_DEBUG_PARSE")
	d.Resolve = boolEnv("TREESPAN_DEBUG_RESOLVE")
	d.Sniff = boolEnv("TREESPAN_DEBUG_SNIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Sniff() bool {
	return d.Sniff
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
