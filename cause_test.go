package slate_test

import (
	"reflect"
	"testing"

	"github.com/oriumgames/slate"
)

func TestCauseOfPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil cause object")
		}
	}()
	slate.CauseOf("hello", nil)
}

func TestCauseWithPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil cause object")
		}
	}()
	slate.CauseOf("hello").With(nil)
}

func TestCauseRootAndAll(t *testing.T) {
	c := slate.CauseOf("root", 2, 3.5)
	root, ok := c.Root()
	if !ok || root != "root" {
		t.Fatalf("Root() = %v, %v, want root, true", root, ok)
	}
	want := []any{"root", 2, 3.5}
	if got := c.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	if c.IsEmpty() {
		t.Fatal("cause with objects reported empty")
	}
	if !slate.EmptyCause().IsEmpty() {
		t.Fatal("empty cause not reported empty")
	}
}

func TestCauseFirstLast(t *testing.T) {
	c := slate.CauseOf("first", 10, "last")

	s, ok := slate.FirstCause[string](c)
	if !ok || s != "first" {
		t.Fatalf("FirstCause[string] = %q, %v", s, ok)
	}
	s, ok = slate.LastCause[string](c)
	if !ok || s != "last" {
		t.Fatalf("LastCause[string] = %q, %v", s, ok)
	}
	if _, ok := slate.FirstCause[float64](c); ok {
		t.Fatal("FirstCause found a float64 in a cause without one")
	}
}

func TestCauseBeforeAfter(t *testing.T) {
	c := slate.CauseOf("before", 7, "after")

	v, ok := slate.BeforeCause[int](c)
	if !ok || v != "before" {
		t.Fatalf("BeforeCause[int] = %v, %v", v, ok)
	}
	v, ok = slate.AfterCause[int](c)
	if !ok || v != "after" {
		t.Fatalf("AfterCause[int] = %v, %v", v, ok)
	}
	if _, ok := slate.BeforeCause[string](c); ok {
		t.Fatal("BeforeCause succeeded for the first object")
	}
	if _, ok := slate.AfterCause[float64](c); ok {
		t.Fatal("AfterCause succeeded for an absent type")
	}
}

func TestCauseAllOfNoneOf(t *testing.T) {
	c := slate.CauseOf("a", 1, "b", 2)

	if got := slate.AllCausesOf[string](c); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("AllCausesOf[string] = %v", got)
	}
	if got := slate.NoneOf[string](c); !reflect.DeepEqual(got, []any{1, 2}) {
		t.Fatalf("NoneOf[string] = %v", got)
	}
}

func TestCauseNamed(t *testing.T) {
	c := slate.CauseOf(
		slate.NewNamedCause("attacker", "alex"),
		"context",
		slate.NewNamedCause("victim", "steve"),
	)

	v, ok := c.Named("attacker")
	if !ok || v != "alex" {
		t.Fatalf("Named(attacker) = %v, %v", v, ok)
	}
	if _, ok := c.Named("bystander"); ok {
		t.Fatal("Named found an unknown name")
	}

	named := c.NamedCauses()
	if len(named) != 2 || named[0].Name != "attacker" || named[1].Name != "victim" {
		t.Fatalf("NamedCauses() = %v", named)
	}
}

func TestCauseWithIsImmutable(t *testing.T) {
	base := slate.CauseOf("a")
	extended := base.With("b", slate.NewNamedCause("extra", 9))

	if got := len(base.All()); got != 1 {
		t.Fatalf("base cause grew to %d objects", got)
	}
	want := []any{"a", "b", 9}
	if got := extended.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("extended.All() = %v, want %v", got, want)
	}
	if v, ok := extended.Named("extra"); !ok || v != 9 {
		t.Fatalf("extended.Named(extra) = %v, %v", v, ok)
	}
}

func TestNewNamedCauseValidation(t *testing.T) {
	for name, fn := range map[string]func(){
		"empty name": func() { slate.NewNamedCause("", 1) },
		"nil value":  func() { slate.NewNamedCause("x", nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
}
