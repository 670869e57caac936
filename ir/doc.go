// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// All JSON values (whether parsed from text or created programmatically)
// are represented as ir.Node trees. A Node is a recursive tagged union:
// exactly one variant is active at a time, indicated by the Type field,
// and the payload lives in the field corresponding to that variant.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit IEEE double
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// Integers and floats are distinct variants: FromInt(1) and FromFloat(1)
// are not equal under Compare.
//
// # Objects
//
// Object fields are kept in ascending lexicographic key order at all
// times. Set inserts in sorted position and overwrites an existing key,
// so duplicate insertion is last-write-wins. Encoding an object emits
// its fields in this intrinsic order.
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree structure. Ownership is strictly downward: a
// container exclusively owns its children and the tree has no cycles.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/parse - Parse JSON text into IR
//   - github.com/jot-format/go-jot/encode - Encode IR to canonical text
package ir
