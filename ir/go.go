package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// FromGo maps a dynamically typed Go value, such as the result of a
// generic unmarshal, to a node tree. Map keys are sorted so the result
// is deterministic. Integral float64 values within int64 range become
// Integer nodes.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return FromFloat(float64(t)), nil
		}
		return FromInt(int64(t)), nil
	case float64:
		if t == math.Trunc(t) && t >= math.MinInt64 && t <= math.MaxInt64 {
			return FromInt(int64(t)), nil
		}
		return FromFloat(t), nil
	case []any:
		ys := make([]*Node, len(t))
		for i, e := range t {
			y, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			ys[i] = y
		}
		return FromSlice(ys), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			y, err := FromGo(t[key])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: key, Val: y})
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string map key %v (%T)", k, k)
			}
			m[ks] = e
		}
		return FromGo(m)
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// ToGo is the inverse of FromGo: objects become map[string]any, arrays
// []any, and leaves their corresponding Go scalars.
func ToGo(y *Node) any {
	switch y.Kind() {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntegerType:
		return y.Int64
	case NumberType:
		return y.Float64
	case StringType:
		return y.String
	case KeyValType:
		return ToGo(y.Value)
	case ObjectType:
		m := make(map[string]any, len(y.Values))
		for _, kv := range y.Values {
			m[kv.Key] = ToGo(kv.Value)
		}
		return m
	case ArrayType:
		vs := make([]any, len(y.Values))
		for i, yv := range y.Values {
			vs[i] = ToGo(yv)
		}
		return vs
	}
	panic("bad node type")
}
