package horoscope

import "errors"

var (
	// ErrInvalidKey marks a sign key outside the canonical set.
	ErrInvalidKey = errors.New("unknown sign key")
	// ErrInvalidArgument marks malformed input such as a bad date.
	ErrInvalidArgument = errors.New("invalid argument")
)
