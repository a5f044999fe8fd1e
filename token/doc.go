// Package token provides an event-driven JSON tokenizer.
//
// The tokenizer does not build any tree. It scans a byte buffer and
// reports structure to a Sink: Push when a container opens, Pop when a
// container closes or a scalar token completes. Events carry half-open
// [Begin, End) byte spans into the scanned buffer, so consumers slice
// the input rather than receive copies.
//
// Only objects and arrays are accepted at the top level. Callers that
// need to scan a bare scalar wrap it in brackets first; package parse
// does exactly that.
package token
