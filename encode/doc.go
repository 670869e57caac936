// Package encode serializes IR nodes to canonical JSON text.
//
// Canonical text is fully compact: no whitespace anywhere, object
// fields in ascending key order (the order ir.Node objects keep
// intrinsically). Encode never fails on a well-formed tree; the only
// error source is the destination writer.
//
//	var buf bytes.Buffer
//	if err := encode.Encode(node, &buf); err != nil { ... }
//
//	s := encode.MustString(node)
//
// EncodeColors renders type-colored output for terminals; colored text
// is for display only, not canonical.
package encode
