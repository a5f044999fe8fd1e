package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromGo(t *testing.T) {
	y, err := FromGo(map[string]any{
		"n":  nil,
		"b":  true,
		"i":  3,
		"f":  2.5,
		"fi": 4.0,
		"s":  "x",
		"xs": []any{int64(1), "two"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromBool(true)},
		{Key: "f", Val: FromFloat(2.5)},
		{Key: "fi", Val: FromInt(4)},
		{Key: "i", Val: FromInt(3)},
		{Key: "n", Val: nil},
		{Key: "s", Val: FromString("x")},
		{Key: "xs", Val: FromSlice([]*Node{FromInt(1), FromString("two")})},
	})
	if !Equal(y, want) {
		t.Error("FromGo mismatch")
	}
}

func TestFromGoRejects(t *testing.T) {
	if _, err := FromGo(map[string]any{"c": make(chan int)}); err == nil {
		t.Error("channel accepted")
	}
	if _, err := FromGo(map[any]any{3: "x"}); err == nil {
		t.Error("non-string key accepted")
	}
}

func TestToGoRoundTrip(t *testing.T) {
	v := map[string]any{
		"a": []any{int64(1), 2.5, nil, false},
		"b": map[string]any{"c": "d"},
	}
	y, err := FromGo(v)
	if err != nil {
		t.Fatal(err)
	}
	got := ToGo(y)
	if d := cmp.Diff(v, got); d != "" {
		t.Errorf("round trip diff:\n%s", d)
	}
}
