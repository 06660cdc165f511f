package fieldec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldec/fieldec/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingField      = "missing_field"
	CodeNullField         = "null_field"
	CodeInvalidType       = "invalid_type"
	CodeValidationFailure = "validation_failure"
	CodeInvalidFormat     = "invalid_format"
	CodeParseError        = "parse_error"
	CodeOverflow          = "overflow"
)

// Segment is a single step of a field path: either an object key or an
// array index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// Key builds an object-key segment.
func Key(name string) Segment { return Segment{key: name} }

// Index builds an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool { return s.isIdx }

// Name returns the object key for key segments ("" for index segments).
func (s Segment) Name() string { return s.key }

// Pos returns the array index for index segments (0 for key segments).
func (s Segment) Pos() int { return s.index }

func (s Segment) String() string {
	if s.isIdx {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path is the ordered field path from the decoding root to a value.
type Path []Segment

// Field returns a new Path with an object-key segment appended. The
// receiver is never mutated so paths can be shared across branches.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), Key(name))
}

// Index returns a new Path with an array-index segment appended.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), Index(i))
}

// Pointer renders the path as an RFC 6901 JSON Pointer, "/" for the root.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// DecodeError is the failure branch of a Decoder result. It carries the
// accumulated path from the decode root to the failure point, a stable
// code from the list above, and a human-readable message.
type DecodeError struct {
	Path    Path
	Code    string
	Message string
	Cause   error // Optional: underlying error.
}

// Error summarizes the failure as "code at /pointer: message".
func (e *DecodeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Code, e.Path.Pointer())
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path.Pointer(), e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a *DecodeError from an error using errors.As
// internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// errAt builds a DecodeError at the given path with the localized message
// for code.
func errAt(p Path, code string, data map[string]string) *DecodeError {
	return &DecodeError{Path: p, Code: code, Message: i18n.T(code, data)}
}

// rebaseUnder prefixes a child error's path with base, wrapping non-decode
// errors with CodeParseError at base.
func rebaseUnder(base Path, err error) *DecodeError {
	de, ok := AsDecodeError(err)
	if !ok {
		return &DecodeError{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}
	}
	return &DecodeError{
		Path:    append(append(Path{}, base...), de.Path...),
		Code:    de.Code,
		Message: de.Message,
		Cause:   de.Cause,
	}
}
