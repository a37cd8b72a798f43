package directory

import (
	"errors"

	"autochart/internal/snapshot"
)

var (
	// ErrUnsupportedExchange is a configuration error: a configured exchange
	// has no connector. It aborts the whole load.
	ErrUnsupportedExchange = snapshot.ErrUnsupportedExchange

	// ErrEmptyPool is returned when a value is requested from an empty list.
	ErrEmptyPool = errors.New("empty symbol pool")

	// ErrInvalidAmount is returned for list queries asking for fewer than one element.
	ErrInvalidAmount = errors.New("amount must be at least 1")

	// ErrNoSource is returned when the directory was built without the
	// loader or upstream client a query needs.
	ErrNoSource = errors.New("source not configured")
)
