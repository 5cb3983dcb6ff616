package slate

import "reflect"

// SubscriptionOption narrows which events a listener receives.
type SubscriptionOption func(*Subscription)

// Subscription holds the resolved filter state of a listener registration.
// Runtimes consult it when routing events.
type Subscription struct {
	include          []reflect.Type
	exclude          []reflect.Type
	causeFirst       []reflect.Type
	causeLast        []reflect.Type
	causeAll         []reflect.Type
	receiveCancelled bool
}

// NewSubscription resolves opts into a Subscription. Listeners receive
// cancelled events only when ReceiveCancelled(true) is applied.
func NewSubscription(opts ...SubscriptionOption) *Subscription {
	s := &Subscription{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IncludeEvent limits the subscription to events of type T. Multiple
// includes accumulate.
func IncludeEvent[T any]() SubscriptionOption {
	return func(s *Subscription) {
		s.include = append(s.include, typeTokenOf[T]())
	}
}

// ExcludeEvent drops events of type T from the subscription.
func ExcludeEvent[T any]() SubscriptionOption {
	return func(s *Subscription) {
		s.exclude = append(s.exclude, typeTokenOf[T]())
	}
}

// ReceiveCancelled controls whether the listener also receives events that
// an earlier listener cancelled.
func ReceiveCancelled(receive bool) SubscriptionOption {
	return func(s *Subscription) {
		s.receiveCancelled = receive
	}
}

// FirstCauseOf requires the first cause object assignable to T to exist
// for the event to be delivered.
func FirstCauseOf[T any]() SubscriptionOption {
	return func(s *Subscription) {
		s.causeFirst = append(s.causeFirst, typeTokenOf[T]())
	}
}

// LastCauseOf requires the last cause object assignable to T to exist for
// the event to be delivered.
func LastCauseOf[T any]() SubscriptionOption {
	return func(s *Subscription) {
		s.causeLast = append(s.causeLast, typeTokenOf[T]())
	}
}

// AllCauses requires every object of the cause to be assignable to T.
func AllCauses[T any]() SubscriptionOption {
	return func(s *Subscription) {
		s.causeAll = append(s.causeAll, typeTokenOf[T]())
	}
}

// Matches reports whether an event of the given dynamic type with the
// given cause passes the subscription's filters.
func (s *Subscription) Matches(event any, cause Cause, cancelled bool) bool {
	if cancelled && !s.receiveCancelled {
		return false
	}
	et := reflect.TypeOf(event)
	if len(s.include) > 0 && !typeMatchesAny(et, s.include) {
		return false
	}
	if typeMatchesAny(et, s.exclude) {
		return false
	}
	objects := cause.All()
	for _, t := range s.causeFirst {
		if len(objects) == 0 || !assignable(objects[0], t) {
			return false
		}
	}
	for _, t := range s.causeLast {
		if len(objects) == 0 || !assignable(objects[len(objects)-1], t) {
			return false
		}
	}
	for _, t := range s.causeAll {
		for _, obj := range objects {
			if !assignable(obj, t) {
				return false
			}
		}
	}
	return true
}

func typeMatchesAny(et reflect.Type, types []reflect.Type) bool {
	for _, t := range types {
		if et == t {
			return true
		}
		if t.Kind() == reflect.Interface && et.Implements(t) {
			return true
		}
	}
	return false
}

func assignable(obj any, t reflect.Type) bool {
	ot := reflect.TypeOf(obj)
	if ot == nil {
		return false
	}
	if ot == t {
		return true
	}
	return t.Kind() == reflect.Interface && ot.Implements(t)
}
