package encode

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/houzhenggang/rejson/ir"
)

type encoder struct {
	buf   *bytes.Buffer
	depth int

	indent  string
	newline string
	space   string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode appends node's JSON text to buf. With no options the output
// is compact, without any whitespace between tokens.
func Encode(node *ir.Node, buf *bytes.Buffer, opts ...EncodeOption) {
	es := &encoder{
		buf:   buf,
		Color: colorNone,
	}
	for _, opt := range opts {
		opt(es)
	}
	ir.Walk(node, es)
}

// String is Encode into a fresh buffer.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	Encode(node, buf, opts...)
	return buf.String()
}

func (es *encoder) Begin(y *ir.Node) {
	switch y.Kind() {
	case ir.NullType:
		es.buf.WriteString(es.Color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		v := "false"
		if y.Bool {
			v = "true"
		}
		es.buf.WriteString(es.Color(ir.BoolType, ValueColor, v))
	case ir.IntegerType:
		es.buf.WriteString(es.Color(ir.IntegerType, ValueColor,
			strconv.FormatInt(y.Int64, 10)))
	case ir.NumberType:
		es.buf.WriteString(es.Color(ir.NumberType, ValueColor,
			formatFloat(y.Float64)))
	case ir.StringType:
		es.buf.WriteString(es.Color(ir.StringType, ValueColor, quote(y.String)))
	case ir.KeyValType:
		es.buf.WriteString(es.Color(ir.ObjectType, FieldColor, quote(y.Key)))
		es.buf.WriteString(es.Color(ir.ObjectType, SepColor, ":"))
		es.buf.WriteString(es.space)
	case ir.ObjectType:
		es.open(y, '{')
	case ir.ArrayType:
		es.open(y, '[')
	}
}

func (es *encoder) End(y *ir.Node) {
	es.depth--
	if y.Len() > 0 {
		es.nl()
	}
	c := "]"
	if y.Kind() == ir.ObjectType {
		c = "}"
	}
	es.buf.WriteString(es.Color(y.Kind(), SepColor, c))
}

func (es *encoder) Delim(parent *ir.Node) {
	es.buf.WriteString(es.Color(parent.Kind(), SepColor, ","))
	es.nl()
}

func (es *encoder) open(y *ir.Node, c byte) {
	es.buf.WriteString(es.Color(y.Kind(), SepColor, string(c)))
	es.depth++
	if y.Len() > 0 {
		es.nl()
	}
}

func (es *encoder) nl() {
	es.buf.WriteString(es.newline)
	if es.indent == "" {
		return
	}
	es.buf.WriteString(strings.Repeat(es.indent, es.depth))
}

// formatFloat renders integral values without a decimal point, pushes
// very small and very large magnitudes to scientific notation, and
// uses the shortest exact fixed form otherwise.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e60 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	if a := math.Abs(f); a < 1e-6 || a > 1e9 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

const hexDigits = "0123456789abcdef"

// quote renders v as a double-quoted JSON string. Bytes at and above
// 0x80 pass through untouched, so valid UTF-8 survives byte for byte.
func quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 || c == 0x7f {
				d = append(d, '\\', 'u', '0', '0',
					hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	return string(append(d, '"'))
}
