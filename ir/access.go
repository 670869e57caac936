package ir

import "fmt"

// Field looks up key in an object node.
func (y *Node) Field(key string) (*Node, error) {
	if y.Type != ObjectType {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, y.Type)
	}
	v := Get(y, key)
	if v == nil {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// At looks up the i'th element of an array node.
func (y *Node) At(i int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: %s", ErrNotArray, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(y.Values))
	}
	return y.Values[i], nil
}
