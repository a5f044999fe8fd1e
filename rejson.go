// Package rejson is a JSON codec built around an explicit node tree.
//
// Parse turns JSON text into an *ir.Node; Append and String turn a
// node back into text, compact by default and formatted via
// encode options. Both directions preserve object member order and
// duplicate keys, and distinguish integers from floats.
//
//	node, err := rejson.Parse([]byte(`{"a": [1, 2.5]}`))
//	if err != nil {
//		...
//	}
//	fmt.Println(rejson.String(node, encode.Pretty()))
package rejson

import (
	"bytes"

	"github.com/houzhenggang/rejson/encode"
	"github.com/houzhenggang/rejson/ir"
	"github.com/houzhenggang/rejson/parse"
)

// Parse decodes one JSON document. The result is nil exactly when the
// document is the literal null.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// Append appends node's JSON text to buf.
func Append(buf *bytes.Buffer, node *ir.Node, opts ...encode.EncodeOption) {
	encode.Encode(node, buf, opts...)
}

// String renders node as JSON text.
func String(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.String(node, opts...)
}

// Valid reports whether d is a parseable JSON document.
func Valid(d []byte) bool {
	_, err := parse.Parse(d)
	return err == nil
}
