// Package debug holds env-var controlled debug switches for the jt
// tool and library internals.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JT_DEBUG_PARSE")
	d.Patch = boolEnv("JT_DEBUG_PATCH")
	d.Eval = boolEnv("JT_DEBUG_EVAL")
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
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
