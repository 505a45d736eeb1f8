package dateutil

import "errors"

var (
	// ErrInvalidDate is returned when input does not denote a real
	// calendar date or time.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("invalid range: start is after end")

	// ErrUnsupportedTimezone is returned for an identifier the host
	// timezone database does not know.
	ErrUnsupportedTimezone = errors.New("unsupported timezone")
)
