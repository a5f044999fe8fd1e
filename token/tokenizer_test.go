package token

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type recSink struct {
	events []string
}

func (r *recSink) Push(ev *Event) error {
	r.events = append(r.events, fmt.Sprintf("push %s %d", ev.Type, ev.Begin))
	return nil
}

func (r *recSink) Pop(ev *Event) error {
	r.events = append(r.events, fmt.Sprintf("pop %s %d:%d", ev.Type, ev.Begin, ev.End))
	return nil
}

func scan(t *testing.T, in string) ([]string, error) {
	t.Helper()
	sink := &recSink{}
	tok := NewTokenizer(sink)
	err := tok.Feed([]byte(in))
	return sink.events, err
}

func TestTokenizerEvents(t *testing.T) {
	events, err := scan(t, `{"a": [1, true, null], "b": "x"}`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"push ObjectOpen 0",
		"pop Key 1:4",
		"push ArrayOpen 6",
		"pop Number 7:8",
		"pop Boolean 10:14",
		"pop Null 16:20",
		"pop ArrayClose 6:21",
		"pop Key 23:26",
		"pop String 28:31",
		"pop ObjectClose 0:32",
	}
	if got := strings.Join(events, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("got:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestTokenizerAccepts(t *testing.T) {
	for _, in := range []string{
		`{}`,
		`[]`,
		`[[[]]]`,
		`{"a":{}}`,
		`[-0.5e+10, 0, "", "ÿ"]`,
		` [ 1 , 2 ] `,
		"\t{\r\n}\n",
		`["true","null"]`,
	} {
		if _, err := scan(t, in); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestTokenizerRejects(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`1`, ErrOutsideContainer},
		{`"a"`, ErrOutsideContainer},
		{`null`, ErrOutsideContainer},
		{`[truex]`, ErrLiteral},
		{`[tru]`, ErrLiteral},
		{`[01]`, ErrNumberLeadingZero},
		{`[1.]`, ErrNumber},
		{`[1e]`, ErrNumber},
		{`[-]`, ErrNumber},
		{`["a]`, ErrUnterminated},
		{`["\x"]`, ErrBadEscape},
		{`["\uzzzz"]`, ErrBadUnicode},
		{"[\"a\nb\"]", ErrUnicodeControl},
	}
	for _, tc := range tests {
		_, err := scan(t, tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestTokenizerMalformed(t *testing.T) {
	for _, in := range []string{
		`[1,]`,
		`{"a":1,}`,
		`{"a"}`,
		`{"a":}`,
		`{1:2}`,
		`[1 2]`,
		`[}`,
		`{]`,
		`[]]`,
		`{} {}`,
		`[1],`,
	} {
		if _, err := scan(t, in); err == nil {
			t.Errorf("%q: accepted", in)
		}
	}
}

func TestTokenizerLevel(t *testing.T) {
	sink := &recSink{}
	tok := NewTokenizer(sink)
	if err := tok.Feed([]byte(`{"a": [1, {"b":`)); err != nil {
		t.Fatal(err)
	}
	if tok.Level() != 3 {
		t.Errorf("level %d", tok.Level())
	}
}

func TestTokenizerMaxDepth(t *testing.T) {
	sink := &recSink{}
	tok := NewTokenizer(sink, MaxDepth(3))
	err := tok.Feed([]byte(`[[[[]]]]`))
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("got %v", err)
	}
	tok = NewTokenizer(&recSink{}, MaxDepth(3))
	if err := tok.Feed([]byte(`[[[]]]`)); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestTokenizerSinkError(t *testing.T) {
	boom := errors.New("boom")
	tok := NewTokenizer(errSink{err: boom})
	if err := tok.Feed([]byte(`[1]`)); err != boom {
		t.Errorf("got %v", err)
	}
}

type errSink struct {
	err error
}

func (e errSink) Push(*Event) error { return nil }
func (e errSink) Pop(*Event) error  { return e.err }

func TestTokenizerEscapeCount(t *testing.T) {
	sink := &capSink{}
	tok := NewTokenizer(sink)
	if err := tok.Feed([]byte(`["a\n\t\u0041b"]`)); err != nil {
		t.Fatal(err)
	}
	var str *Event
	for i := range sink.pops {
		if sink.pops[i].Type == String {
			str = &sink.pops[i]
		}
	}
	if str == nil {
		t.Fatal("no string event")
	}
	if str.Escapes != 3 {
		t.Errorf("escapes %d", str.Escapes)
	}
}

type capSink struct {
	pops []Event
}

func (c *capSink) Push(*Event) error { return nil }
func (c *capSink) Pop(ev *Event) error {
	c.pops = append(c.pops, *ev)
	return nil
}
