package locale

import "errors"

var (
	// Resolution errors.
	ErrUnknownCategory = errors.New("unknown word-list category")
	ErrLocaleNotFound  = errors.New("locale not found in loaded bundle")
	ErrEmptyChain      = errors.New("locale chain is empty")

	// Bundle validation errors.
	ErrEmptyLocaleCode = errors.New("empty locale code in bundle")
	ErrEmptyWordList   = errors.New("category defines an empty word list")

	// Load errors.
	ErrFailedToReadFile  = errors.New("failed to read locale file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML locale data")
	ErrFailedToParseJSON = errors.New("failed to parse JSON locale data")
	ErrLoadCancelled     = errors.New("locale loading cancelled")
)
