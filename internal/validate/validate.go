// Package validate enforces shape constraints on embedding requests.
// Validation is pure: it never touches the store or the backend.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Request shape limits.
const (
	// MaxTextLength is the maximum length of a single text in characters.
	MaxTextLength = 8192

	// MaxBatchSize is the maximum number of texts in one batch request.
	MaxBatchSize = 32
)

// Single validates one text: it must be non-blank after trimming and at
// most MaxTextLength characters. The trimmed text is returned.
func Single(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return "", fmt.Errorf("%w: maximum is %d characters", ErrTextTooLong, MaxTextLength)
	}
	return trimmed, nil
}

// Batch validates an ordered list of texts: 1..MaxBatchSize items, each
// subject to the same rules as Single. It short-circuits on the first
// violation, identifying the offending position.
func Batch(texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(texts) > MaxBatchSize {
		return nil, fmt.Errorf("%w: maximum is %d texts", ErrBatchTooLarge, MaxBatchSize)
	}

	cleaned := make([]string, 0, len(texts))
	for i, text := range texts {
		c, err := Single(text)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		cleaned = append(cleaned, c)
	}
	return cleaned, nil
}
