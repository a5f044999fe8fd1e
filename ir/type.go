package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	NumberType
	StringType
	KeyValType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		NumberType:  "Number",
		StringType:  "String",
		KeyValType:  "KeyVal",
		ObjectType:  "Object",
		ArrayType:   "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case NullType, BoolType, IntegerType, NumberType, StringType, KeyValType, ObjectType, ArrayType:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a type>", t)
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Number":  NumberType,
		"String":  StringType,
		"KeyVal":  KeyValType,
		"Object":  ObjectType,
		"Array":   ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		NumberType,
		StringType,
		KeyValType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType, KeyValType:
		return false
	default:
		return true
	}
}
