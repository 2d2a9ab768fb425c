package layout

import "errors"

var (
	// ErrInvalidCount indicates a non-positive icon count.
	ErrInvalidCount = errors.New("layout: icon count must be positive")

	// ErrInvalidRadius indicates a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("layout: radius must be positive")
)
