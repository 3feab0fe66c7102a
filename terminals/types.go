package terminals

import "errors"

var (
	// ErrInvalidCount indicates a negative number of points.
	ErrInvalidCount = errors.New("terminals: count must be non-negative")

	// ErrInvalidRadius indicates a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("terminals: radius must be positive and finite")

	// ErrMalformedRow indicates a CSV row that is not three finite numbers.
	ErrMalformedRow = errors.New("terminals: malformed row")
)

// Header is the column header written by WriteCSV.
var Header = []string{"x", "y", "z"}
