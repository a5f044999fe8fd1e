package token

import (
	"errors"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in    string
		n     int
		flags Flags
	}{
		{"0", 1, 0},
		{"-0", 2, 0},
		{"123", 3, 0},
		{"-17,", 3, 0},
		{"0.5", 3, FloatFlag},
		{"-12.25]", 6, FloatFlag},
		{"1e10", 4, ExponentFlag},
		{"1E+10", 5, ExponentFlag},
		{"2.5e-3", 6, FloatFlag | ExponentFlag},
	}
	for _, tc := range tests {
		n, flags, err := number([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if n != tc.n || flags != tc.flags {
			t.Errorf("%q: got (%d, %v), want (%d, %v)", tc.in, n, flags, tc.n, tc.flags)
		}
	}
}

func TestNumberErrs(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"-", ErrNumber},
		{"-x", ErrNumber},
		{"1.", ErrNumber},
		{"1.e5", ErrNumber},
		{"1e", ErrNumber},
		{"1e+", ErrNumber},
		{"01", ErrNumberLeadingZero},
		{"00", ErrNumberLeadingZero},
	}
	for _, tc := range tests {
		_, _, err := number([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.want)
		}
	}
}
