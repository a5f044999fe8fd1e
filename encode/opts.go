package encode

type EncodeOption func(*encoder)

// Indent sets the string repeated once per nesting level after each
// newline.
func Indent(s string) EncodeOption {
	return func(es *encoder) { es.indent = s }
}

// Newline sets the string written after container opens, delimiters,
// and before container closes.
func Newline(s string) EncodeOption {
	return func(es *encoder) { es.newline = s }
}

// Space sets the string written after the colon of an object member.
func Space(s string) EncodeOption {
	return func(es *encoder) { es.space = s }
}

// Pretty is the conventional human-readable layout.
func Pretty() EncodeOption {
	return func(es *encoder) {
		es.indent = "  "
		es.newline = "\n"
		es.space = " "
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encoder) { es.Color = c.Color }
}
