// Package fieldec decodes JSON-like tree values into strongly-typed results
// using continuation-passing composition instead of positional argument
// lists.
//
// Each field combinator (Required/Optional/RequiredAt/OptionalAt) decodes
// one named field against the current input value, binds the decoded value
// through a continuation, and runs the continuation's decoder against the
// same original input. Field order in the target type never has to match
// field order in the decoding code, and there is no arity limit: every
// binding lives in a closure.
//
// Design policy:
// - Decoders are pure and stateless; the same decoder can be applied to many
//   tree values concurrently with no locking.
// - Failure is a value, not an exception: every error is a *DecodeError with
//   a stable code and the accumulated path from the decode root.
// - Keep only public APIs in the root package; the CLI lives under
//   internal/cli and cmd/fieldec.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct {
//		Name string
//		Age  int
//	}
//
//	dec := fieldec.Required("name", fieldec.String(), func(name string) fieldec.Decoder[User] {
//		return fieldec.Required("age", fieldec.Int(), func(age int) fieldec.Decoder[User] {
//			if age < 18 {
//				return fieldec.Fail[User]("you must be an adult")
//			}
//			return fieldec.Succeed(User{Name: name, Age: age})
//		})
//	})
//
//	u, err := fieldec.DecodeFrom(ctx, dec, fieldec.JSONBytes(data))
package fieldec
