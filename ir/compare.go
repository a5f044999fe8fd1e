package ir

import "cmp"

var rank = map[Type]int{
	NullType:    0,
	BoolType:    1,
	IntegerType: 2,
	NumberType:  3,
	StringType:  4,
	KeyValType:  5,
	ObjectType:  6,
	ArrayType:   7,
}

// Compare establishes a total order over node trees. Nodes of distinct
// types order by type rank; same-typed nodes order by their values,
// with containers ordered lexicographically over their children.
// Integer and Number nodes are distinct even when numerically equal.
func Compare(a, b *Node) int {
	ra, rb := rank[a.Kind()], rank[b.Kind()]
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch a.Kind() {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return cmp.Compare(a.String, b.String)
	case KeyValType:
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return Compare(a.Value, b.Value)
	case ObjectType, ArrayType:
		n := min(len(a.Values), len(b.Values))
		for i := 0; i < n; i++ {
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	panic("bad node type")
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
