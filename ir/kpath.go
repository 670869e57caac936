package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// KPath returns the path string of this node's position in the tree,
// e.g. "a.b[0]". The root node's path is "".
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		prefix := node.Parent.KPath()
		if prefix == "" {
			return node.ParentField
		}
		return prefix + "." + node.ParentField
	case ArrayType:
		prefix := node.Parent.KPath()
		return prefix + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetPath navigates the tree using a path in KPath syntax.
//
// Example:
//
//	rootNode.GetPath("a.b[0]") navigates to the first element of the
//	array at field "b" of the object at field "a".
//
// Returns an error if the path does not exist or is invalid.
func (node *Node) GetPath(p string) (*Node, error) {
	cur := node
	rest := p
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			if rest == "" {
				return nil, fmt.Errorf("invalid path %q: trailing '.'", p)
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid path %q: unclosed '['", p)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: bad index %q", p, rest[1:end])
			}
			next, err := cur.At(i)
			if err != nil {
				return nil, fmt.Errorf("path %q at %q: %w", p, cur.KPath(), err)
			}
			cur = next
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			next, err := cur.Field(rest[:end])
			if err != nil {
				return nil, fmt.Errorf("path %q at %q: %w", p, cur.KPath(), err)
			}
			cur = next
			rest = rest[end:]
		}
	}
	return cur, nil
}
