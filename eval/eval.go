// Package eval runs expressions against a JSON document.
//
// The document is exposed to the expression as "doc", converted to
// plain Go values, plus a getpath(path) helper resolving KPath syntax
// against the original tree. The expression result is converted back
// into an IR node.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/gomap"
	"github.com/jot-format/go-jot/ir"
)

func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", src)
	}
	env := map[string]any{
		"doc": gomap.ToAny(doc),
	}
	prg, err := expr.Compile(src, exprOpts(doc, env)...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", src, err)
	}
	return gomap.FromAny(res)
}

func exprOpts(doc *ir.Node, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("getpath", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("getpath expects 1 arg, got %d", len(params))
			}
			p, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("getpath expects a string, got %T", params[0])
			}
			node, err := doc.GetPath(p)
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(node), nil
		}),
	}
}
