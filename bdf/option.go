package bdf

// Option holds a value which may be unset, such as a glyph's device width
// after an unreadable DWIDTH.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a set Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an unset Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Unwrap returns the value and whether it is set.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// Or returns the value if set, def otherwise.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
