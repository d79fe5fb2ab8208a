package aircraftrepo

import "errors"

var (
	// ErrNotFound indicates the requested aircraft does not exist.
	ErrNotFound = errors.New("aircraft not found")

	// ErrAlreadyExists indicates an aircraft already exists with the provided ID or registration.
	ErrAlreadyExists = errors.New("aircraft already exists")
)
