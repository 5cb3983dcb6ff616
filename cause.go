package slate

import (
	"fmt"
	"slices"
	"strings"
)

// Cause is the ordered chain of objects responsible for an event. The
// first object is the root cause; later objects give further context.
// Objects may be named to disambiguate entries of the same type. A Cause
// is immutable: With returns a new one.
type Cause struct {
	names   []string
	objects []any
}

// NamedCause pairs an object with a name inside a Cause.
type NamedCause struct {
	Name  string
	Value any
}

// NewNamedCause creates a named cause entry. It panics if name is empty or
// value is nil.
func NewNamedCause(name string, value any) NamedCause {
	if name == "" {
		panic("slate: named cause requires a name")
	}
	if value == nil {
		panic("slate: cause may not contain nil")
	}
	return NamedCause{Name: name, Value: value}
}

// CauseOf constructs a cause from the given objects in order. NamedCause
// values keep their names; other objects are unnamed. It panics if any
// object is nil.
func CauseOf(objects ...any) Cause {
	c := Cause{
		names:   make([]string, 0, len(objects)),
		objects: make([]any, 0, len(objects)),
	}
	for _, obj := range objects {
		if obj == nil {
			panic("slate: cause may not contain nil")
		}
		if nc, ok := obj.(NamedCause); ok {
			if nc.Value == nil {
				panic("slate: cause may not contain nil")
			}
			c.names = append(c.names, nc.Name)
			c.objects = append(c.objects, nc.Value)
			continue
		}
		c.names = append(c.names, "")
		c.objects = append(c.objects, obj)
	}
	return c
}

// EmptyCause returns a cause with no objects.
func EmptyCause() Cause {
	return Cause{}
}

// IsEmpty reports whether the cause holds no objects.
func (c Cause) IsEmpty() bool {
	return len(c.objects) == 0
}

// Root returns the first object of the cause.
func (c Cause) Root() (any, bool) {
	if len(c.objects) == 0 {
		return nil, false
	}
	return c.objects[0], true
}

// All returns the objects of the cause in order. The returned slice is a
// copy.
func (c Cause) All() []any {
	return slices.Clone(c.objects)
}

// With returns a new cause with the additional objects appended. It panics
// if any object is nil.
func (c Cause) With(additional ...any) Cause {
	next := Cause{
		names:   slices.Clone(c.names),
		objects: slices.Clone(c.objects),
	}
	appended := CauseOf(additional...)
	next.names = append(next.names, appended.names...)
	next.objects = append(next.objects, appended.objects...)
	return next
}

// Named returns the object carried under the given name.
func (c Cause) Named(name string) (any, bool) {
	for i, n := range c.names {
		if n == name {
			return c.objects[i], true
		}
	}
	return nil, false
}

// NamedCauses returns the named entries of the cause in order.
func (c Cause) NamedCauses() []NamedCause {
	var out []NamedCause
	for i, n := range c.names {
		if n != "" {
			out = append(out, NamedCause{Name: n, Value: c.objects[i]})
		}
	}
	return out
}

// String returns a debug representation of the cause.
func (c Cause) String() string {
	var sb strings.Builder
	sb.WriteString("Cause[")
	for i, obj := range c.objects {
		if i > 0 {
			sb.WriteString(", ")
		}
		if c.names[i] != "" {
			sb.WriteString(c.names[i])
			sb.WriteString("=")
		}
		fmt.Fprintf(&sb, "%v", obj)
	}
	sb.WriteString("]")
	return sb.String()
}

// FirstCause returns the first object of the cause assignable to T.
func FirstCause[T any](c Cause) (T, bool) {
	for _, obj := range c.objects {
		if v, ok := obj.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// LastCause returns the last object of the cause assignable to T.
func LastCause[T any](c Cause) (T, bool) {
	for i := len(c.objects) - 1; i >= 0; i-- {
		if v, ok := c.objects[i].(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AllCausesOf returns every object of the cause assignable to T, in order.
func AllCausesOf[T any](c Cause) []T {
	var out []T
	for _, obj := range c.objects {
		if v, ok := obj.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// NoneOf returns every object of the cause not assignable to T, in order.
func NoneOf[T any](c Cause) []any {
	var out []any
	for _, obj := range c.objects {
		if _, ok := obj.(T); !ok {
			out = append(out, obj)
		}
	}
	return out
}

// BeforeCause returns the object immediately preceding the first object
// assignable to T.
func BeforeCause[T any](c Cause) (any, bool) {
	for i, obj := range c.objects {
		if _, ok := obj.(T); ok {
			if i == 0 {
				return nil, false
			}
			return c.objects[i-1], true
		}
	}
	return nil, false
}

// AfterCause returns the object immediately following the first object
// assignable to T.
func AfterCause[T any](c Cause) (any, bool) {
	for i, obj := range c.objects {
		if _, ok := obj.(T); ok {
			if i+1 >= len(c.objects) {
				return nil, false
			}
			return c.objects[i+1], true
		}
	}
	return nil, false
}
