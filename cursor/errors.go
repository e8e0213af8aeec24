package cursor

import (
	"fmt"

	ferrors "github.com/friendsofgo/errors"
)

// ErrMissingFields is returned when the Config's field list is absent or empty.
// fields are required: they define both ORDER BY and the cursor shape.
var ErrMissingFields = fmt.Errorf("paging: fields option is required")

// ErrCursorCorrupt is returned when a cursor fails to base64-decode,
// fails to decode as a tagged value tuple, or decodes to a tuple whose
// length doesn't match the field vector it's being read against.
var ErrCursorCorrupt = fmt.Errorf("paging: cursor is corrupt")

// UnknownBindingError is raised when a FieldSpec references a join binding
// (alias) the query doesn't recognize.
type UnknownBindingError struct {
	Name  string
	Known []string
}

func (e *UnknownBindingError) Error() string {
	return fmt.Sprintf("paging: unknown binding %q (known bindings: %v)", e.Name, e.Known)
}

// InvalidDirectionError is raised when a direction token is neither "asc"
// nor "desc".
type InvalidDirectionError struct {
	Value string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("paging: invalid direction %q", e.Value)
}

// ExecutorError wraps an error surfaced by the row or count executor.
// It is never itself retried or inspected by the engine; it exists purely
// so the caller can tell "my query failed" apart from "my cursor/fields
// were malformed" while still getting a stack trace attached to the
// underlying cause.
type ExecutorError struct {
	Inner error
}

func (e *ExecutorError) Error() string {
	return fmt.Sprintf("paging: executor error: %s", e.Inner)
}

func (e *ExecutorError) Unwrap() error { return e.Inner }

// wrapExecutorErr attaches a stack trace to err (via friendsofgo/errors,
// the teacher's errors.Wrap replacement) and surfaces it as ExecutorError.
func wrapExecutorErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ExecutorError{Inner: ferrors.Wrap(err, msg)}
}
