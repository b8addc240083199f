package domain

import "errors"

var (
	// ErrUnknownLocation is returned when an address is absent from the location list.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrMissingDistance is returned when neither matrix cell holds a value for a pair.
	ErrMissingDistance = errors.New("missing distance")
	// ErrMalformedTime is returned for clock input outside HH:MM, 0-23 hours or 0-59 minutes.
	ErrMalformedTime = errors.New("malformed time")

	ErrPackageNotFound  = errors.New("package not found")
	ErrTruckFull        = errors.New("truck at full capacity")
	ErrInvalidPartition = errors.New("invalid partition")
)
