package fieldec

import "context"

// Decode is the primary entry point for already-parsed trees: it runs d
// against the tree value v.
func Decode[T any](ctx context.Context, d Decoder[T], v any) (T, error) {
	if d == nil {
		var zero T
		return zero, &DecodeError{Code: CodeParseError, Message: "nil decoder"}
	}
	return d(ctx, v)
}

// DecodeFrom parses a Source into a tree value and runs d against it.
// Source parse failures surface as a parse_error at the decode root.
func DecodeFrom[T any](ctx context.Context, d Decoder[T], src Source) (T, error) {
	var zero T
	if d == nil {
		return zero, &DecodeError{Code: CodeParseError, Message: "nil decoder"}
	}
	v, err := src.Value()
	if err != nil {
		return zero, &DecodeError{Code: CodeParseError, Message: err.Error(), Cause: err}
	}
	return d(ctx, v)
}
