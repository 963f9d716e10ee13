package pricing

import "errors"

var (
	// ErrInvalidInput is returned for non-finite arguments or a negative number of decimal places.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain is returned when the discount factor is undefined over the reals,
	// e.g. a rate below -100% combined with a fractional term.
	ErrDomain = errors.New("domain error")
)
