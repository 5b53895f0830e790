package types

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{
			name: "with message",
			err: &Error{
				Op:      "index.AddDocument",
				Kind:    ErrInvalidDocumentID,
				Message: "id -1 is negative",
			},
		},
		{
			name: "with underlying error",
			err: &Error{
				Op:   "query.Parse",
				Kind: ErrInvalidQuery,
				Err:  errors.New("trailing bare -"),
			},
		},
		{
			name: "kind only",
			err: &Error{
				Op:   "index.Construct",
				Kind: ErrInvalidStopWord,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.Error(); msg == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:   "index.AddDocument",
		Kind: ErrInvalidDocumentID,
	}

	if !errors.Is(err, ErrInvalidDocumentID) {
		t.Error("Error should match ErrInvalidDocumentID")
	}
	if errors.Is(err, ErrInvalidQuery) {
		t.Error("Error should not match ErrInvalidQuery")
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &Error{
		Op:   "test",
		Kind: ErrInvalidWord,
		Err:  inner,
	}

	if errors.Unwrap(err) != inner {
		t.Error("Unwrap should return inner error")
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("index.MatchDocument", ErrInvalidDocumentID, "document %d not indexed", 42)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("Errorf should return *Error")
	}
	if e.Op != "index.MatchDocument" {
		t.Errorf("Op = %s, want index.MatchDocument", e.Op)
	}
	if !errors.Is(err, ErrInvalidDocumentID) {
		t.Error("Errorf result should match ErrInvalidDocumentID")
	}
}

func TestWrapError(t *testing.T) {
	inner := errors.New("divide by zero")
	err := WrapError("index.AddDocument", ErrInvalidWord, inner)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("WrapError should return *Error")
	}
	if e.Err != inner {
		t.Error("wrapped error should contain inner error")
	}
}
