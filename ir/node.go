package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	// KeyVal payload. Value is nil both for an explicit JSON null and
	// for a member whose value has not been attached yet; the latter
	// never escapes the parser.
	Key   string
	Value *Node

	// Object and Array children. Object children are always KeyVal
	// nodes; Array children are plain values and may be nil.
	Values []*Node
}

// Kind returns the node's type, mapping the nil node to NullType.
func (y *Node) Kind() Type {
	if y == nil {
		return NullType
	}
	return y.Type
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntegerType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Values[i] = &Node{
			Type:  KeyValType,
			Key:   kv.Key,
			Value: kv.Val,
		}
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, KeyVal{Key: key, Val: m[key]})
	}
	return FromKeyVals(kvs)
}

func FromSlice(ys []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ys))
	copy(res.Values, ys)
	return res
}

// Get returns the value of the first member named field, or nil if the
// node is not an object or has no such member. A nil result is ambiguous
// between a null-valued member and a missing one; use Has to distinguish.
func Get(y *Node, field string) *Node {
	if y.Kind() != ObjectType {
		return nil
	}
	for _, kv := range y.Values {
		if kv.Key == field {
			return kv.Value
		}
	}
	return nil
}

func Has(y *Node, field string) bool {
	if y.Kind() != ObjectType {
		return false
	}
	for _, kv := range y.Values {
		if kv.Key == field {
			return true
		}
	}
	return false
}

// Len returns the number of children of an object or array, else 0.
func (y *Node) Len() int {
	switch y.Kind() {
	case ObjectType, ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
		String:  y.String,
		Key:     y.Key,
		Value:   y.Value.Clone(),
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}
