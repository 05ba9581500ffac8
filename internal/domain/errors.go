package domain

import "errors"

var (
	// ErrUnsupportedFormat is returned when a document format is not recognized
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtraction is returned when text cannot be extracted from a document
	ErrExtraction = errors.New("extraction failed")

	// ErrInvalidInput is returned when the question is empty or malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyAnswer is returned when the provider answer has no content to format
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrProvider is returned when the language model call fails
	ErrProvider = errors.New("provider request failed")

	// ErrProviderTimeout is returned when the language model call exceeds its deadline
	ErrProviderTimeout = errors.New("provider request timed out")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("internal error")
)
