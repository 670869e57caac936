// Package jot is an embeddable JSON value library: parse text into an
// ir.Node tree, build or mutate trees programmatically, and generate
// canonical compact text back.
//
// The core lives in three packages: ir (the tagged-union tree),
// parse (text to tree with a closed error set), and encode (tree to
// canonical text). This package adds tree-level operations built on
// them, such as RFC 6902 patching.
package jot
