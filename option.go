package fieldec

// Option carries the three-way outcome of an optional field compressed to
// two: absent and explicit null both come back as None, a present decodable
// value as Some. Callers that must tell "missing" from "null" apart should
// decode the field with Required and a Nullable value decoder instead.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the value when present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
