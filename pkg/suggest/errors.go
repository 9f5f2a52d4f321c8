package suggest

import "errors"

var (
	// ErrInvalidInput is returned for an empty or whitespace-only passage or fragment.
	ErrInvalidInput = errors.New("empty input provided")
	// ErrInsufficientInput is returned when a passage holds fewer than two words.
	ErrInsufficientInput = errors.New("more than one word is needed for training")
	// ErrNotYetTrained is returned by Lookup before any passage was learned.
	ErrNotYetTrained = errors.New("no passage has been trained yet")
	// ErrNotFound is returned when no learned word carries the fragment as a prefix.
	ErrNotFound = errors.New("no suggestions found")
)
