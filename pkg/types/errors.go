package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search server, one per kind in the error
// taxonomy: callers branch on these with errors.Is, never on Error.Message.
var (
	ErrInvalidStopWord   = errors.New("invalid stop word")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrInvalidWord       = errors.New("invalid word")
	ErrInvalidQuery      = errors.New("invalid query")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Error wraps an error with the operation and kind that produced it.
type Error struct {
	Op      string // Operation that failed, e.g. "index.AddDocument"
	Kind    error  // One of the Err* sentinels above
	Err     error  // Underlying error, if any
	Message string // Human-readable detail
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Errorf creates a new Error with a formatted message.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an error with operation and kind context.
func WrapError(op string, kind error, err error) error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}
