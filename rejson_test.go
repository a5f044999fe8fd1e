package rejson

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/houzhenggang/rejson/encode"
	"github.com/houzhenggang/rejson/ir"
	"github.com/houzhenggang/rejson/parse"
)

// Documents chosen so every value has one canonical compact form:
// non-integral floats only, no redundant whitespace differences after
// the first round.
var roundTripDocs = []string{
	`{}`,
	`[]`,
	`[null]`,
	`{"a":1,"b":[true,false,null],"c":{"d":"x"}}`,
	`{"a":0.25,"b":-1.5}`,
	`{"dup":1,"dup":2}`,
	`["\"quoted\"","back\\slash","tab\there"]`,
	`[[[[1]]]]`,
	`{"k":[{},{"m":[]}]}`,
	`-17`,
	`"solo"`,
	`true`,
	`null`,
}

func TestRoundTrip(t *testing.T) {
	for _, doc := range roundTripDocs {
		y, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		out := String(y)
		if out != doc {
			t.Errorf("%q: round-tripped to %q", doc, out)
		}
	}
}

func TestReparseIdempotent(t *testing.T) {
	docs := []string{
		`  { "a" : [ 1 , 2.5 ] }  `,
		"[\n\t\"x\",\n\tnull\n]",
		`5.0`,
	}
	for _, doc := range docs {
		y, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		once := String(y)
		z, err := Parse([]byte(once))
		if err != nil {
			t.Fatalf("%q: reparse: %v", once, err)
		}
		if twice := String(z); twice != once {
			t.Errorf("%q: %q != %q", doc, once, twice)
		}
	}
}

func TestPrettyReparse(t *testing.T) {
	y, err := Parse([]byte(`{"a":[1,{"b":null}],"c":"s"}`))
	if err != nil {
		t.Fatal(err)
	}
	pretty := String(y, encode.Pretty())
	z, err := Parse([]byte(pretty))
	if err != nil {
		t.Fatalf("pretty output unparseable: %v\n%s", err, pretty)
	}
	if !ir.Equal(y, z) {
		t.Errorf("pretty round trip diverged:\n%s", cmp.Diff(String(y), String(z)))
	}
}

func TestScalarRecovery(t *testing.T) {
	y, err := Parse([]byte(`42`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Kind() != ir.IntegerType || y.Int64 != 42 {
		t.Errorf("got %+v", y)
	}
	if _, err := Parse([]byte(`42 43`)); err == nil {
		t.Error("two scalars accepted")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{`{"a":1}`, true},
		{`[]`, true},
		{`"s"`, true},
		{``, false},
		{`{`, false},
		{`{"a":}`, false},
		{`[1,]`, false},
		{`[9223372036854775808]`, false},
	}
	for _, tc := range tests {
		if got := Valid([]byte(tc.in)); got != tc.ok {
			t.Errorf("Valid(%q) = %v", tc.in, got)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	if _, err := Parse([]byte("  ")); !errors.Is(err, parse.ErrEmptyDoc) {
		t.Errorf("empty: %v", err)
	}
	if _, err := Parse([]byte(`{"a": [`)); !errors.Is(err, parse.ErrIncomplete) {
		t.Errorf("incomplete: %v", err)
	}
	if _, err := Parse([]byte(`[1e999]`)); !errors.Is(err, parse.ErrInvalidNumber) {
		t.Errorf("number: %v", err)
	}
	var lerr *parse.LexError
	if _, err := Parse([]byte(`{oops}`)); !errors.As(err, &lerr) {
		t.Errorf("lex: %v", err)
	} else if lerr.Pos != 2 {
		t.Errorf("lex pos %d", lerr.Pos)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	y, err := Parse([]byte(`["A☃\n\t\"\\"]`))
	if err != nil {
		t.Fatal(err)
	}
	want := "A☃\n\t\"\\"
	if got := y.Values[0].String; got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
	out := String(y)
	z, err := Parse([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if z.Values[0].String != want {
		t.Errorf("re-decoded %q", z.Values[0].String)
	}
}
