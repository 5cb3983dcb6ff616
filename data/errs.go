package data

import "errors"

var (
	// ErrNilValue is returned when a nil value is passed to a mutation.
	ErrNilValue = errors.New("data: nil value")

	// ErrEmptyQuery is returned when an operation requires at least one
	// path segment but the query resolves to the view itself.
	ErrEmptyQuery = errors.New("data: query must have at least one part")

	// ErrSelfReference is returned when a view is set as a value of
	// itself, directly or through a Serializable that decomposes back
	// into the destination container.
	ErrSelfReference = errors.New("data: cannot set a view into itself")
)
