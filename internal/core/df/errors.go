package df

import "errors"

var (
	ErrNoSamples           = errors.New("no samples")
	ErrTooFewSamples       = errors.New("fewer samples than elements to combine")
	ErrInvalidElementCount = errors.New("element count must be at least 1")
	ErrUnknownFinder       = errors.New("unknown direction finder")
)
