package ir

// Visitor is the interface for structural traversal of a node tree.
//
// Begin is called once per visited node, in document order, including
// nil nodes for nulls. End is called after the children of an object or
// array have been visited; it is not called for leaves or key-values.
// Delim is called between consecutive children of an object or array,
// with the parent as argument.
type Visitor interface {
	Begin(y *Node)
	End(y *Node)
	Delim(parent *Node)
}

// Walk traverses y depth-first, calling v's hooks as described on
// Visitor. A KeyVal node is visited as a unit: Begin on the key-value,
// then a full walk of its value.
func Walk(y *Node, v Visitor) {
	v.Begin(y)
	switch y.Kind() {
	case KeyValType:
		Walk(y.Value, v)
	case ObjectType, ArrayType:
		for i, yv := range y.Values {
			if i > 0 {
				v.Delim(y)
			}
			Walk(yv, v)
		}
		v.End(y)
	}
}
