// Package parse builds ir node trees from JSON text.
package parse

import (
	"errors"
	"math"
	"strconv"

	"github.com/houzhenggang/rejson/ir"
	"github.com/houzhenggang/rejson/token"
)

// Parse decodes one JSON document from d. The result is nil exactly
// when the document is the literal null. Scalar documents are accepted
// even though the tokenizer only takes containers at the root; Parse
// brackets them and unwraps the result.
//
// Errors are *LexError, *IncompleteError, or *NumberError, apart from
// ErrEmptyDoc for blank input.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	first := 0
	for first < len(d) && token.IsSpace(d[first]) {
		first++
	}
	if first == len(d) {
		return nil, ErrEmptyDoc
	}
	b := &builder{}
	buf := d
	switch d[first] {
	case '{', '[':
	default:
		// bare scalar: bracket it so the tokenizer has a root
		// container, then unwrap below. adjust maps offsets in the
		// bracketed buffer back to d.
		buf = make([]byte, 0, len(d)-first+2)
		buf = append(buf, '[')
		buf = append(buf, d[first:]...)
		buf = append(buf, ']')
		b.wrapped = true
		b.adjust = first - 1
	}
	b.d = buf
	tok := token.NewTokenizer(b, o.tokenOpts()...)
	if err := tok.Feed(buf); err != nil {
		var serr *token.ScanError
		if errors.As(err, &serr) {
			return nil, &LexError{Err: serr.Err, Pos: b.pos(serr.Pos.Off)}
		}
		return nil, err
	}
	if n := tok.Level(); n > 0 {
		return nil, &IncompleteError{Open: n}
	}
	root := b.stack[0]
	if b.wrapped {
		return root.Values[0], nil
	}
	return root, nil
}

type builder struct {
	d       []byte
	stack   []*ir.Node
	wrapped bool
	adjust  int
}

// pos converts an offset in the scanned buffer to a 1-based position
// in the original input.
func (b *builder) pos(off int) int {
	if b.wrapped {
		off += b.adjust
	}
	return off + 1
}

func (b *builder) Push(ev *token.Event) error {
	y := &ir.Node{Type: ir.ArrayType}
	if ev.Type == token.ObjectOpen {
		y.Type = ir.ObjectType
	}
	b.stack = append(b.stack, y)
	return nil
}

func (b *builder) Pop(ev *token.Event) error {
	switch ev.Type {
	case token.ObjectClose, token.ArrayClose:
		return b.attach(ev)
	case token.Key:
		b.stack = append(b.stack, &ir.Node{
			Type: ir.KeyValType,
			Key:  b.text(ev),
		})
		return nil
	case token.String:
		b.stack = append(b.stack, ir.FromString(b.text(ev)))
	case token.Number:
		y, err := b.number(ev)
		if err != nil {
			return err
		}
		b.stack = append(b.stack, y)
	case token.Boolean:
		b.stack = append(b.stack, ir.FromBool(ev.Flags&token.TrueFlag != 0))
	case token.Null:
		b.stack = append(b.stack, nil)
	}
	return b.attach(ev)
}

// text extracts a string or key token's decoded content. The span
// includes the quotes.
func (b *builder) text(ev *token.Event) string {
	body := b.d[ev.Begin+1 : ev.End-1]
	if ev.Escapes > 0 {
		return token.Unescape(body)
	}
	return string(body)
}

func (b *builder) number(ev *token.Event) (*ir.Node, error) {
	text := string(b.d[ev.Begin:ev.End])
	if ev.Flags&(token.FloatFlag|token.ExponentFlag) != 0 {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &NumberError{Pos: b.pos(ev.Begin)}
		}
		return ir.FromFloat(f), nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &NumberError{Pos: b.pos(ev.Begin)}
	}
	return ir.FromInt(v), nil
}

// attach joins the completed top of stack to its parent. A value whose
// parent is a key-value completes that key-value, which then joins its
// object in the same step.
func (b *builder) attach(ev *token.Event) error {
	n := len(b.stack)
	if n == 1 {
		return nil
	}
	top := b.stack[n-1]
	parent := b.stack[n-2]
	if parent.Kind() == ir.KeyValType {
		parent.Value = top
		b.stack = b.stack[:n-1]
		n--
		top = parent
		parent = b.stack[n-2]
	}
	if b.wrapped && n == 2 && len(parent.Values) > 0 {
		return token.UnexpectedErr("trailing content", &token.Pos{Off: ev.Begin, D: b.d})
	}
	parent.Values = append(parent.Values, top)
	b.stack = b.stack[:n-1]
	return nil
}
