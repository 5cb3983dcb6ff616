package slate

import "fmt"

// ResettableBuilder is embedded by every builder contract in this package.
// Reset returns the builder to its initial state so one builder instance
// can construct several values.
type ResettableBuilder[B any] interface {
	// Reset clears all configured state and returns the builder for
	// chaining.
	Reset() B
}

// RegisterBuilderSupplier registers the factory producing fresh builders
// of type B. Runtimes call this during startup for every builder contract
// they implement: TeamBuilder, ObjectiveBuilder, ParticleEffectBuilder and
// the worldgen populator builders.
func RegisterBuilderSupplier[B any](r *GameRegistry, supplier func() B) {
	r.suppliers.Store(typeTokenOf[B](), func() any { return supplier() })
}

// CreateBuilder returns a fresh builder of type B.
//
//	tb, err := slate.CreateBuilder[slate.TeamBuilder](g.Registry())
//
// It fails when the runtime has not registered a supplier for B.
func CreateBuilder[B any](r *GameRegistry) (B, error) {
	var zero B
	s, ok := r.suppliers.Load(typeTokenOf[B]())
	if !ok {
		return zero, fmt.Errorf("slate: no builder supplier registered for %v", typeTokenOf[B]())
	}
	return s.(func() any)().(B), nil
}
