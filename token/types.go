package token

type Type int

const (
	ObjectOpen Type = iota
	ObjectClose
	ArrayOpen
	ArrayClose
	Key
	String
	Number
	Boolean
	Null
)

func (t Type) String() string {
	return map[Type]string{
		ObjectOpen:  "ObjectOpen",
		ObjectClose: "ObjectClose",
		ArrayOpen:   "ArrayOpen",
		ArrayClose:  "ArrayClose",
		Key:         "Key",
		String:      "String",
		Number:      "Number",
		Boolean:     "Boolean",
		Null:        "Null",
	}[t]
}

type Flags uint8

const (
	// FloatFlag marks a Number token containing a fraction part.
	FloatFlag Flags = 1 << iota
	// ExponentFlag marks a Number token containing an exponent part.
	ExponentFlag
	// TrueFlag marks a Boolean token spelling "true".
	TrueFlag
)

// Event describes one token. Begin and End delimit the token's bytes in
// the scanned buffer, half-open. String and Key spans include the
// surrounding double quotes; Escapes counts backslash escapes inside
// them. Container close events span from the opening bracket through
// the closing one.
type Event struct {
	Type    Type
	Begin   int
	End     int
	Flags   Flags
	Escapes int
}

// Sink receives tokenizer events. Push is called when an object or
// array opens, with End not yet known. Pop is called when a scalar,
// key, or container completes. A non-nil error from either aborts the
// scan and is returned from Feed unchanged.
type Sink interface {
	Push(ev *Event) error
	Pop(ev *Event) error
}
