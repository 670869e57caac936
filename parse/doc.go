// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.WithMaxDepth(64))
//
// Parse consumes exactly one document: surrounding whitespace is
// permitted, anything else after the value fails with
// ErrRootNotSingular. Failures are classified by the sentinel errors in
// errs.go; use errors.Is to discriminate.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/encode - Encode IR to text
package parse
