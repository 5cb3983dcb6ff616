package slate

import (
	"reflect"
	"sync"
)

// CatalogType is implemented by named game values that live in the
// GameRegistry: display slots, criteria, plant types, particle types and
// similar catalogs. IDs are unique within one catalog kind.
type CatalogType interface {
	// ID returns the unique identifier of this value within its catalog,
	// e.g. "sidebar".
	ID() string

	// Name returns the human-readable name of this value.
	Name() string
}

// GameRegistry holds every registered catalog value, grouped by Go type,
// together with the builder suppliers used by CreateBuilder.
//
// Lookups are the hot path - catalogs are registered once during runtime
// init but queried constantly - so catalogs hang off a sync.Map keyed by
// reflect.Type and each catalog guards its own entries with a read-write
// lock.
type GameRegistry struct {
	catalogs sync.Map // map[reflect.Type]*catalog

	suppliers sync.Map // map[reflect.Type]func() any
}

// NewGameRegistry creates an empty registry. Runtimes populate it during
// startup; plugins only read from it.
func NewGameRegistry() *GameRegistry {
	return &GameRegistry{}
}

// catalog stores the values of one catalog kind in registration order.
type catalog struct {
	mu      sync.RWMutex
	byID    map[string]CatalogType
	ordered []CatalogType
}

func (r *GameRegistry) catalogFor(t reflect.Type) *catalog {
	if c, ok := r.catalogs.Load(t); ok {
		return c.(*catalog)
	}
	c, _ := r.catalogs.LoadOrStore(t, &catalog{byID: make(map[string]CatalogType)})
	return c.(*catalog)
}

// Register adds catalog values of type T. A value whose ID is already
// taken within the catalog replaces the previous registration in place.
func Register[T CatalogType](r *GameRegistry, values ...T) {
	c := r.catalogFor(typeTokenOf[T]())
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range values {
		if _, ok := c.byID[v.ID()]; !ok {
			c.ordered = append(c.ordered, v)
		} else {
			for i, old := range c.ordered {
				if old.ID() == v.ID() {
					c.ordered[i] = v
					break
				}
			}
		}
		c.byID[v.ID()] = v
	}
}

// GetType returns the catalog value of type T with the given ID.
func GetType[T CatalogType](r *GameRegistry, id string) (T, bool) {
	var zero T
	c, ok := r.catalogs.Load(typeTokenOf[T]())
	if !ok {
		return zero, false
	}
	cat := c.(*catalog)
	cat.mu.RLock()
	v, ok := cat.byID[id]
	cat.mu.RUnlock()
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// AllOf returns every registered value of catalog kind T in registration
// order.
func AllOf[T CatalogType](r *GameRegistry) []T {
	c, ok := r.catalogs.Load(typeTokenOf[T]())
	if !ok {
		return nil
	}
	cat := c.(*catalog)
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	out := make([]T, 0, len(cat.ordered))
	for _, v := range cat.ordered {
		out = append(out, v.(T))
	}
	return out
}

// typeTokenOf returns the reflect.Type for T without allocating a value.
func typeTokenOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
