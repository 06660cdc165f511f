package fieldec

import "context"

// Decoder is a pure computation from a tree value to a T. A decoder either
// succeeds with a value or fails with a *DecodeError; it never mutates its
// input. Decoders are stateless, so the same decoder may be applied to many
// tree values, concurrently, with no synchronization.
type Decoder[T any] func(ctx context.Context, v any) (T, error)

// Succeed returns a decoder that ignores its input and always yields v.
// It is the terminal step of a continuation chain: once every field is
// bound, Succeed builds the final result from the closed-over bindings.
func Succeed[T any](v T) Decoder[T] {
	return func(ctx context.Context, _ any) (T, error) { return v, nil }
}

// Fail returns a decoder that ignores its input and always fails with a
// validation_failure carrying msg. Use it inside continuations to reject
// a payload on cross-field rules after the fields involved are bound.
func Fail[T any](msg string) Decoder[T] {
	return func(ctx context.Context, _ any) (T, error) {
		var zero T
		return zero, &DecodeError{Code: CodeValidationFailure, Message: msg}
	}
}

// AndThen sequences two decoding steps: run d, then pass its result to k
// and run the decoder k returns against the same original input value.
// d is applied exactly once, and k never runs when d fails.
func AndThen[T, U any](d Decoder[T], k func(T) Decoder[U]) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		t, err := d(ctx, v)
		if err != nil {
			var zero U
			return zero, err
		}
		return k(t)(ctx, v)
	}
}

// Map applies a pure function to the result of a decoder. Equivalent to
// AndThen(d, compose(Succeed, f)) without the intermediate decoder.
func Map[T, U any](d Decoder[T], f func(T) U) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		t, err := d(ctx, v)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(t), nil
	}
}
