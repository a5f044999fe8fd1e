// Package ir provides the in-memory representation for JSON documents.
//
// A JSON document is represented as a tree of Node values. The Node is a
// tagged union: the Type field selects which payload fields are meaningful.
//
//   - BoolType: Bool
//   - IntegerType: Int64 (numeric literals without fraction or exponent)
//   - NumberType: Float64 (numeric literals with fraction or exponent)
//   - StringType: String (a private copy of the unescaped bytes; may hold
//     arbitrary byte sequences, including NUL)
//   - KeyValType: Key and Value; one object member, not a standalone value
//   - ObjectType: Values, all of which are KeyVal nodes
//   - ArrayType: Values, entries of which may be nil
//
// JSON null has no node of its own: it is represented by a nil *Node in any
// slot that can hold a value (an array entry, a KeyVal value, or the result
// of parsing the document "null"). Code traversing trees must treat nil as a
// first-class value, never as an error.
//
// Objects preserve insertion order and permit duplicate keys; merging
// (last-write-wins) is a consumer concern, not enforced here.
//
// Each node is owned by exactly one parent: trees are trees, not DAGs.
// Nodes carry no synchronization; callers sharing a tree across goroutines
// must serialize access themselves. Distinct trees may be used concurrently.
//
// # Related Packages
//
//   - github.com/houzhenggang/rejson/parse - parses JSON text into Node trees
//   - github.com/houzhenggang/rejson/encode - encodes Node trees to JSON text
package ir
