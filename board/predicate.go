package board

// Predicate tests a cell's value. ok is false when the cell is unset, in which
// case v is the zero value of T.
type Predicate[T any] func(v T, ok bool) bool

// IsSet matches cells holding a value.
func IsSet[T any]() Predicate[T] {
	return func(_ T, ok bool) bool { return ok }
}

// IsUnset matches empty cells.
func IsUnset[T any]() Predicate[T] {
	return func(_ T, ok bool) bool { return !ok }
}

// Equal matches cells holding exactly x. Unset cells never match, even when
// x is the zero value.
func Equal[T comparable](x T) Predicate[T] {
	return func(v T, ok bool) bool { return ok && v == x }
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T, ok bool) bool { return !p(v, ok) }
}

// And matches when both p and q match; q is not evaluated if p fails.
func And[T any](p, q Predicate[T]) Predicate[T] {
	return func(v T, ok bool) bool { return p(v, ok) && q(v, ok) }
}

// Or matches when either p or q matches; q is not evaluated if p holds.
func Or[T any](p, q Predicate[T]) Predicate[T] {
	return func(v T, ok bool) bool { return p(v, ok) || q(v, ok) }
}
