package fieldec

import "context"

// The four field combinators share one discipline: decode a field against
// the CURRENT input value, hand only the decoded value to the continuation,
// and run the decoder the continuation returns against the SAME original
// input. Sibling fields can therefore be extracted in any order, and every
// binding lives in the continuation's closure rather than in any shared
// decoding context.

// Required decodes field with d and passes the value to k. A missing field,
// an explicit null, or a value d rejects fails the whole decoder with the
// field name prefixed to the error path; k never runs on failure. Null is
// accepted only when d itself tolerates it (see Nullable).
func Required[T, U any](field string, d Decoder[T], k func(T) Decoder[U]) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		var zero U
		obj, ok := asObject(v)
		if !ok {
			return zero, errAt(nil, CodeInvalidType, map[string]string{"expected": "object", "got": typeName(v)})
		}
		fv, present := obj[field]
		if !present {
			return zero, errAt(Path{}.Field(field), CodeMissingField, map[string]string{"key": field})
		}
		t, err := d(ctx, fv)
		if err != nil {
			if fv == nil {
				return zero, errAt(Path{}.Field(field), CodeNullField, map[string]string{"key": field})
			}
			return zero, rebaseUnder(Path{}.Field(field), err)
		}
		return k(t)(ctx, v)
	}
}

// Optional decodes field with d and passes Some(value) to k, or None when
// the field is absent or explicitly null. A present non-null value that d
// rejects is still a failure: optionality covers absence, not malformation.
func Optional[T, U any](field string, d Decoder[T], k func(Option[T]) Decoder[U]) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		var zero U
		obj, ok := asObject(v)
		if !ok {
			return zero, errAt(nil, CodeInvalidType, map[string]string{"expected": "object", "got": typeName(v)})
		}
		fv, present := obj[field]
		if !present || fv == nil {
			return k(None[T]())(ctx, v)
		}
		t, err := d(ctx, fv)
		if err != nil {
			return zero, rebaseUnder(Path{}.Field(field), err)
		}
		return k(Some(t))(ctx, v)
	}
}

// RequiredAt is Required through a multi-segment key path of nested
// objects. Traversal fails fast: the error path holds exactly the segments
// traversed plus the failing one, never the full requested path.
func RequiredAt[T, U any](path []string, d Decoder[T], k func(T) Decoder[U]) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		var zero U
		fv, err := walkPath(v, path)
		if err != nil {
			return zero, err
		}
		full := keyPath(path)
		t, err := d(ctx, fv)
		if err != nil {
			if fv == nil {
				return zero, errAt(full, CodeNullField, map[string]string{"key": lastKey(path)})
			}
			return zero, rebaseUnder(full, err)
		}
		return k(t)(ctx, v)
	}
}

// OptionalAt is Optional through a multi-segment key path. Only the FINAL
// segment's absence or null becomes None; a missing or non-object
// intermediate segment is a hard failure, reported at the segment that
// broke the traversal.
func OptionalAt[T, U any](path []string, d Decoder[T], k func(Option[T]) Decoder[U]) Decoder[U] {
	return func(ctx context.Context, v any) (U, error) {
		var zero U
		if len(path) == 0 {
			return k(None[T]())(ctx, v)
		}
		parent, err := walkPath(v, path[:len(path)-1])
		if err != nil {
			return zero, err
		}
		obj, ok := asObject(parent)
		if !ok {
			return zero, errAt(keyPath(path[:len(path)-1]), CodeInvalidType, map[string]string{"expected": "object", "got": typeName(parent)})
		}
		last := path[len(path)-1]
		fv, present := obj[last]
		if !present || fv == nil {
			return k(None[T]())(ctx, v)
		}
		t, err := d(ctx, fv)
		if err != nil {
			return zero, rebaseUnder(keyPath(path), err)
		}
		return k(Some(t))(ctx, v)
	}
}

// walkPath resolves a key path through nested objects. It stops at the
// first segment that cannot be traversed: a non-object container is an
// invalid_type at the container's own path, a missing key a missing_field
// at the traversed prefix plus that key.
func walkPath(v any, path []string) (any, error) {
	cur := v
	for i, seg := range path {
		obj, ok := asObject(cur)
		if !ok {
			return nil, errAt(keyPath(path[:i]), CodeInvalidType, map[string]string{"expected": "object", "got": typeName(cur)})
		}
		nv, present := obj[seg]
		if !present {
			return nil, errAt(keyPath(path[:i+1]), CodeMissingField, map[string]string{"key": seg})
		}
		cur = nv
	}
	return cur, nil
}

func keyPath(segs []string) Path {
	p := make(Path, 0, len(segs))
	for _, s := range segs {
		p = append(p, Key(s))
	}
	return p
}

func lastKey(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}
