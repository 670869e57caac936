// Package gomap converts between IR nodes and plain Go values.
//
// ToAny maps a tree onto nil/bool/int64/float64/string/[]any/
// map[string]any; FromAny maps such values (and a few convenience
// types) back onto a tree. The pair backs the expression environment in
// the eval package.
package gomap

import (
	"errors"
	"fmt"
	"math"

	"github.com/jot-format/go-jot/ir"
)

var ErrCannotMap = errors.New("cannot map value")

func ToAny(y *ir.Node) any {
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.IntType:
		return y.Int64
	case ir.FloatType:
		return y.Float64
	case ir.StringType:
		return y.String
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

func FromAny(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return t, nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrCannotMap, t)
		}
		return ir.FromInt(int64(t)), nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			y, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		res := &ir.Node{Type: ir.ObjectType}
		for k, e := range t {
			y, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Set(k, y)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrCannotMap, v)
	}
}
