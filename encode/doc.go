// Package encode serializes ir nodes to JSON text.
//
// # Usage
//
//	// Compact encoding
//	buf := bytes.NewBuffer(nil)
//	encode.Encode(node, buf)
//
//	// Pretty printed
//	encode.Encode(node, buf, encode.Pretty())
//
//	// Custom whitespace
//	encode.Encode(node, buf, encode.Indent("\t"), encode.Newline("\n"))
//
// # Related Packages
//
//   - github.com/houzhenggang/rejson/ir - node representation
//   - github.com/houzhenggang/rejson/parse - parse text to nodes
package encode
