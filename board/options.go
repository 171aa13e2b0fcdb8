package board

import "fmt"

// ChangeFunc observes a slot write. old/oldOK describe the slot before the
// write and cur/curOK after it; an ok of false means unset.
type ChangeFunc[T any] func(c Cell, old T, oldOK bool, cur T, curOK bool)

// Option configures a GameBoard at construction.
// An invalid Option is recorded and surfaced as ErrOptionViolation by
// NewGameBoard.
type Option[T any] func(*GameOptions[T])

// GameOptions holds the settings applied by Option values.
type GameOptions[T any] struct {
	// Fill, when Filled is true, is the value every slot starts with and
	// returns to on Reset.
	Fill   T
	Filled bool

	// OnChange is invoked after every slot write, including Unset and Reset.
	OnChange ChangeFunc[T]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns GameOptions with every slot starting unset and no
// change hook.
func DefaultOptions[T any]() GameOptions[T] {
	return GameOptions[T]{}
}

// WithFill makes every slot start set to v instead of unset.
func WithFill[T any](v T) Option[T] {
	return func(o *GameOptions[T]) {
		o.Fill = v
		o.Filled = true
	}
}

// WithOnChange registers fn to run after each slot write.
// A nil fn is an ErrOptionViolation.
func WithOnChange[T any](fn ChangeFunc[T]) Option[T] {
	return func(o *GameOptions[T]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnChange hook is nil", ErrOptionViolation)

			return
		}
		o.OnChange = fn
	}
}
