package validate

import "errors"

// Validation failure kinds. Messages are safe to echo to callers; they
// name the violated constraint, never internal state.
var (
	// ErrEmptyText is returned for texts that are blank after trimming.
	ErrEmptyText = errors.New("text is empty")

	// ErrTextTooLong is returned for texts over the character limit.
	ErrTextTooLong = errors.New("text too long")

	// ErrEmptyBatch is returned for batch requests with no texts.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrBatchTooLarge is returned for batches over the item limit.
	ErrBatchTooLarge = errors.New("batch too large")
)
