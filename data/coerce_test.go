package data

import "testing"

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		in   any
		want bool
		ok   bool
	}{
		{true, true, true},
		{false, false, true},
		{"true", true, true},
		{"Yes", true, true},
		{"0", false, true},
		{"no", false, true},
		{1, true, true},
		{0.0, false, true},
		{"maybe", false, false},
		{[]any{}, false, false},
	}
	for _, tc := range cases {
		got, ok := coerceBool(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceBool(%#v) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerceInt64(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		ok   bool
	}{
		{42, 42, true},
		{int8(7), 7, true},
		{uint16(9), 9, true},
		{int64(1 << 40), 1 << 40, true},
		{3.9, 3, true},
		{float32(2), 2, true},
		{"15", 15, true},
		{" 15 ", 15, true},
		{"3.5", 3, true},
		{"x", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := coerceInt64(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceInt64(%#v) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerceFloat64(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{2.5, 2.5, true},
		{7, 7, true},
		{"1.25", 1.25, true},
		{"nope", 0, false},
	}
	for _, tc := range cases {
		got, ok := coerceFloat64(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceFloat64(%#v) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerceString(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"s", "s", true},
		{42, "42", true},
		{2.5, "2.5", true},
		{true, "true", true},
		{[]any{1}, "", false},
		{map[string]any{}, "", false},
	}
	for _, tc := range cases {
		got, ok := coerceString(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceString(%#v) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerceRune(t *testing.T) {
	if r, ok := coerceRune("abc"); !ok || r != 'a' {
		t.Errorf("coerceRune(abc) = %q, %v", r, ok)
	}
	if r, ok := coerceRune('x'); !ok || r != 'x' {
		t.Errorf("coerceRune('x') = %q, %v", r, ok)
	}
	if r, ok := coerceRune(65); !ok || r != 'A' {
		t.Errorf("coerceRune(65) = %q, %v", r, ok)
	}
	if r, ok := coerceRune(int64(0x1F600)); !ok || r != '\U0001F600' {
		t.Errorf("coerceRune(0x1F600) = %q, %v", r, ok)
	}
	if _, ok := coerceRune(""); ok {
		t.Error("empty string must not coerce to a rune")
	}
}

func TestCoerceByte(t *testing.T) {
	if b, ok := coerceByte(200); !ok || b != 200 {
		t.Errorf("coerceByte(200) = %v, %v", b, ok)
	}
	// Out-of-range values truncate like a Go conversion, same as the
	// other narrow integer targets.
	over := 300
	if b, ok := coerceByte(300); !ok || b != byte(over) {
		t.Errorf("coerceByte(300) = %v, %v", b, ok)
	}
	if b, ok := coerceByte(-1); !ok || b != 255 {
		t.Errorf("coerceByte(-1) = %v, %v", b, ok)
	}
	if _, ok := coerceByte("nope"); ok {
		t.Error("non-numeric string must not coerce to a byte")
	}
}

func TestCoerceInt16(t *testing.T) {
	if v, ok := coerceInt16(1000); !ok || v != 1000 {
		t.Errorf("coerceInt16(1000) = %v, %v", v, ok)
	}
	big := 70000
	if v, ok := coerceInt16(70000); !ok || v != int16(big) {
		t.Errorf("coerceInt16(70000) = %v, %v", v, ok)
	}
}
