package model

import (
	"errors"
	"strings"
)

var (
	// ErrQueryFormat is returned when the location string does not contain
	// exactly one comma separating city and state.
	ErrQueryFormat = errors.New("location must be city and state separated by a comma")

	// ErrEmptyPart is returned when the comma split succeeds but either the
	// city or the state side is empty after trimming.
	ErrEmptyPart = errors.New("city or state is empty")
)

// ParseLocation splits a "City, State" string into its two parts.
// Both parts are trimmed of surrounding whitespace.
func ParseLocation(s string) (city, state string, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return "", "", ErrQueryFormat
	}

	city = strings.TrimSpace(parts[0])
	state = strings.TrimSpace(parts[1])
	if city == "" || state == "" {
		return "", "", ErrEmptyPart
	}

	return city, state, nil
}
