package core

import "errors"

var (
	// ErrInvalidInput indicates an empty or whitespace-only question,
	// feedback text, or a missing user identifier. Callers refuse the
	// submission locally; nothing reaches an external service.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBusy indicates a question is already in flight for the session.
	ErrBusy = errors.New("a question is already pending for this session")
	// ErrServiceUnavailable indicates the inference call failed or timed out.
	ErrServiceUnavailable = errors.New("inference service unavailable")
	// ErrPersistenceFailure indicates a history or feedback write failed.
	// For a question round-trip the answer is still returned; it is not
	// rolled back.
	ErrPersistenceFailure = errors.New("failed to persist record")
)
