package fieldec

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// String returns the minimal string value decoder.
func String() Decoder[string] {
	return func(ctx context.Context, v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", errAt(nil, CodeInvalidType, map[string]string{"expected": "string", "got": typeName(v)})
		}
		return s, nil
	}
}

// Bool returns the minimal bool value decoder.
func Bool() Decoder[bool] {
	return func(ctx context.Context, v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, errAt(nil, CodeInvalidType, map[string]string{"expected": "bool", "got": typeName(v)})
		}
		return b, nil
	}
}

// Number returns a decoder yielding json.Number. float64 inputs are
// re-rendered with the shortest JSON-compatible representation.
func Number() Decoder[json.Number] {
	return func(ctx context.Context, v any) (json.Number, error) {
		switch n := v.(type) {
		case json.Number:
			return n, nil
		case float64:
			return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
		case int:
			return json.Number(strconv.Itoa(n)), nil
		default:
			return "", errAt(nil, CodeInvalidType, map[string]string{"expected": "number", "got": typeName(v)})
		}
	}
}

// Int returns a decoder for whole numbers fitting the int range. Fractional
// or out-of-range numbers fail with an overflow error.
func Int() Decoder[int] {
	return func(ctx context.Context, v any) (int, error) {
		switch n := v.(type) {
		case json.Number:
			i, err := strconv.ParseInt(string(n), 10, strconv.IntSize)
			if err != nil {
				return 0, errAt(nil, CodeOverflow, map[string]string{"got": string(n)})
			}
			return int(i), nil
		case float64:
			i := int(n)
			if float64(i) != n {
				return 0, errAt(nil, CodeOverflow, map[string]string{"got": strconv.FormatFloat(n, 'g', -1, 64)})
			}
			return i, nil
		case int:
			return n, nil
		default:
			return 0, errAt(nil, CodeInvalidType, map[string]string{"expected": "number", "got": typeName(v)})
		}
	}
}

// Int64 is Int for the full int64 range.
func Int64() Decoder[int64] {
	return func(ctx context.Context, v any) (int64, error) {
		switch n := v.(type) {
		case json.Number:
			i, err := strconv.ParseInt(string(n), 10, 64)
			if err != nil {
				return 0, errAt(nil, CodeOverflow, map[string]string{"got": string(n)})
			}
			return i, nil
		case float64:
			i := int64(n)
			if float64(i) != n {
				return 0, errAt(nil, CodeOverflow, map[string]string{"got": strconv.FormatFloat(n, 'g', -1, 64)})
			}
			return i, nil
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		default:
			return 0, errAt(nil, CodeInvalidType, map[string]string{"expected": "number", "got": typeName(v)})
		}
	}
}

// Float64 returns a decoder for numbers as float64, accepting json.Number
// with potential precision loss.
func Float64() Decoder[float64] {
	return func(ctx context.Context, v any) (float64, error) {
		switch n := v.(type) {
		case float64:
			return n, nil
		case json.Number:
			f, err := strconv.ParseFloat(string(n), 64)
			if err != nil {
				return 0, errAt(nil, CodeOverflow, map[string]string{"got": string(n)})
			}
			return f, nil
		case int:
			return float64(n), nil
		default:
			return 0, errAt(nil, CodeInvalidType, map[string]string{"expected": "number", "got": typeName(v)})
		}
	}
}

// Time returns a decoder for RFC 3339 timestamp strings.
func Time() Decoder[time.Time] {
	return func(ctx context.Context, v any) (time.Time, error) {
		s, ok := v.(string)
		if !ok {
			return time.Time{}, errAt(nil, CodeInvalidType, map[string]string{"expected": "string", "got": typeName(v)})
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, &DecodeError{Code: CodeInvalidFormat, Message: "invalid RFC3339 time", Cause: err}
		}
		return t, nil
	}
}

// Any returns a decoder that accepts every tree value as-is, null included.
func Any() Decoder[any] {
	return func(ctx context.Context, v any) (any, error) { return v, nil }
}

// Nullable lifts a decoder to tolerate explicit null: null decodes to None,
// everything else runs d and wraps the result in Some. Combined with
// Required this gives a required-but-nullable field.
func Nullable[T any](d Decoder[T]) Decoder[Option[T]] {
	return func(ctx context.Context, v any) (Option[T], error) {
		if v == nil {
			return None[T](), nil
		}
		t, err := d(ctx, v)
		if err != nil {
			return None[T](), err
		}
		return Some(t), nil
	}
}

// SliceOf decodes an array applying d to every element. Element failures
// carry the element index in their path.
func SliceOf[T any](d Decoder[T]) Decoder[[]T] {
	return func(ctx context.Context, v any) ([]T, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, errAt(nil, CodeInvalidType, map[string]string{"expected": "array", "got": typeName(v)})
		}
		out := make([]T, 0, len(arr))
		for i, el := range arr {
			t, err := d(ctx, el)
			if err != nil {
				return nil, rebaseUnder(Path{}.Index(i), err)
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// MapOf decodes an object applying d to every value. Keys are visited in
// ascending order for deterministic error reporting.
func MapOf[T any](d Decoder[T]) Decoder[map[string]T] {
	return func(ctx context.Context, v any) (map[string]T, error) {
		obj, ok := asObject(v)
		if !ok {
			return nil, errAt(nil, CodeInvalidType, map[string]string{"expected": "object", "got": typeName(v)})
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]T, len(obj))
		for _, k := range keys {
			t, err := d(ctx, obj[k])
			if err != nil {
				return nil, rebaseUnder(Path{}.Field(k), err)
			}
			out[k] = t
		}
		return out, nil
	}
}
