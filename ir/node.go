package ir

import (
	"maps"
	"slices"
	"strings"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object from key-value pairs. Keys are placed in
// sorted position as they are inserted; a repeated key overwrites the
// earlier value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Set inserts or overwrites the value for key, keeping Fields in
// ascending key order. The node must be an object.
func (y *Node) Set(key string, val *Node) *Node {
	i, found := slices.BinarySearchFunc(y.Fields, key, func(f *Node, k string) int {
		return strings.Compare(f.String, k)
	})
	val.Parent = y
	val.ParentField = key
	if found {
		val.ParentIndex = i
		y.Values[i] = val
		return y
	}
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
	}
	y.Fields = slices.Insert(y.Fields, i, yField)
	y.Values = slices.Insert(y.Values, i, val)
	val.ParentIndex = i
	for j := i + 1; j < len(y.Fields); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return y
}

// Append adds an element to an array node.
func (y *Node) Append(val *Node) *Node {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	y.Values = append(y.Values, val)
	return y
}

// Get returns the value for key in an object node, or nil if the key is
// absent or the node is not an object.
func Get(y *Node, field string) *Node {
	i, found := slices.BinarySearchFunc(y.Fields, field, func(f *Node, k string) int {
		return strings.Compare(f.String, k)
	})
	if !found {
		return nil
	}
	return y.Values[i]
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Len returns the number of elements of an array or fields of an
// object, and 0 for leaf nodes.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
