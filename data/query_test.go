package data_test

import (
	"testing"

	"github.com/oriumgames/slate/data"
)

func TestNewQueryFlattensParts(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"single", []string{"a"}, "a"},
		{"multiple", []string{"a", "b", "c"}, "a.b.c"},
		{"dotted part", []string{"a.b", "c"}, "a.b.c"},
		{"empty parts dropped", []string{"", "a", ""}, "a"},
		{"zero parts", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := data.NewQuery(tc.parts...)
			if q.String() != tc.want {
				t.Errorf("NewQuery(%v) = %q, want %q", tc.parts, q.String(), tc.want)
			}
		})
	}
}

func TestQueryEquality(t *testing.T) {
	if data.NewQuery("a.b") != data.NewQuery("a", "b") {
		t.Error("queries with equal flattened parts must be equal")
	}
	if data.NewQuery("a") == data.NewQuery("b") {
		t.Error("distinct queries must not be equal")
	}

	// Queries are comparable and usable as map keys.
	m := map[data.Query]int{data.ParseQuery("x.y"): 1}
	if m[data.NewQuery("x", "y")] != 1 {
		t.Error("expected map lookup through an equal query to succeed")
	}
}

func TestQueryThen(t *testing.T) {
	base := data.NewQuery("a")
	got := base.Then(data.NewQuery("b", "c"))
	if got.String() != "a.b.c" {
		t.Errorf("Then = %q, want %q", got.String(), "a.b.c")
	}
	if base.String() != "a" {
		t.Error("Then must not mutate the receiver")
	}

	var zero data.Query
	if zero.Then(base) != base || base.Then(zero) != base {
		t.Error("zero query must be the identity for Then")
	}
}

func TestQueryParts(t *testing.T) {
	parts := data.ParseQuery("a.b.c").Parts()
	want := []string{"a", "b", "c"}
	if len(parts) != len(want) {
		t.Fatalf("Parts = %v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("Parts = %v, want %v", parts, want)
		}
	}
	if got := data.NewQuery().Parts(); got != nil {
		t.Errorf("zero query Parts = %v, want nil", got)
	}
}

func TestQueryLastAndEmpty(t *testing.T) {
	if got := data.ParseQuery("a.b.c").Last(); got != "c" {
		t.Errorf("Last = %q, want %q", got, "c")
	}
	if got := data.NewQuery("a").Last(); got != "a" {
		t.Errorf("Last = %q, want %q", got, "a")
	}
	if !data.NewQuery().Empty() {
		t.Error("zero query must be empty")
	}
	if data.NewQuery("a").Empty() {
		t.Error("non-zero query must not be empty")
	}
}
