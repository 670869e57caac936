package jot

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// ApplyPatch applies an RFC 6902 JSON Patch (itself given as a tree,
// normally an array of operation objects) to doc and returns the
// patched tree. Both trees are bridged through their canonical
// encodings.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %s\n", encode.MustString(patch))
	}
	pd, err := marshal(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	dd, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(dd)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("reading patched document: %w", err)
	}
	return res, nil
}

func marshal(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
