package data

import (
	"log/slog"
	"reflect"
	"sync"
)

// Serializable is implemented by objects that can decompose themselves
// into a container. Serializable values are accepted directly by View.Set
// without the caller invoking the decomposition explicitly.
type Serializable interface {
	ToContainer() *Container
}

// BuilderFunc reconstructs a typed object from a view, reporting false
// when the view does not describe a valid T.
type BuilderFunc[T any] func(view *View) (T, bool)

// Registry maps types to the builders capable of reconstructing them from
// views. The tree itself never constructs typed objects; it hands the
// resolved sub-view to the registered builder and returns its result.
//
// A Registry is safe for concurrent registration and lookup: types are
// registered once at startup but looked up constantly.
type Registry struct {
	builders sync.Map // map[reflect.Type]BuilderFunc[any]
}

// NewRegistry creates an empty builder registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterBuilder registers the builder for type T, replacing any previous
// registration.
func RegisterBuilder[T Serializable](r *Registry, build BuilderFunc[T]) {
	r.builders.Store(typeOf[T](), BuilderFunc[any](func(view *View) (any, bool) {
		return build(view)
	}))
}

func (r *Registry) builder(t reflect.Type) (BuilderFunc[any], bool) {
	b, ok := r.builders.Load(t)
	if !ok {
		return nil, false
	}
	return b.(BuilderFunc[any]), true
}

// GetSerializable reconstructs a T from the view stored at q using the
// builder registered for T. It reports absence when the path does not hold
// a view, no builder is registered, or the builder rejects the view.
func GetSerializable[T Serializable](v *View, q Query, r *Registry) (T, bool) {
	var zero T
	view, ok := v.GetView(q)
	if !ok {
		return zero, false
	}
	b, ok := r.builder(typeOf[T]())
	if !ok {
		slog.Debug("data: no builder registered", "type", typeOf[T]().String())
		return zero, false
	}
	built, ok := b(view)
	if !ok {
		return zero, false
	}
	return built.(T), true
}

// GetSerializableList reconstructs a T from every view element of the list
// stored at q. Elements the builder rejects are dropped, matching the
// best-effort policy of the typed list getters.
func GetSerializableList[T Serializable](v *View, q Query, r *Registry) ([]T, bool) {
	views, ok := v.GetViewList(q)
	if !ok {
		return nil, false
	}
	b, ok := r.builder(typeOf[T]())
	if !ok {
		slog.Debug("data: no builder registered", "type", typeOf[T]().String())
		return nil, false
	}
	out := make([]T, 0, len(views))
	for _, view := range views {
		built, ok := b(view)
		if !ok {
			continue
		}
		out = append(out, built.(T))
	}
	return out, true
}
