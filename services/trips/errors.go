package trips

import "errors"

var (
	ErrUnknownReport = errors.New("unknown report")
	ErrUnknownCheck  = errors.New("unknown quality check")
	ErrInvalidLimit  = errors.New("limit must be positive")
	// ErrMalformedCSV means the extract has no usable header
	ErrMalformedCSV = errors.New("malformed trip extract")
)
