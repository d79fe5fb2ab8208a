package crewrepo

import "errors"

var (
	// ErrNotFound indicates the requested crew member does not exist.
	ErrNotFound = errors.New("crew member not found")

	// ErrAlreadyExists indicates a crew member already exists with the provided ID.
	ErrAlreadyExists = errors.New("crew member already exists")

	// ErrEmployeeCodeInUse indicates another crew member already holds the employee code.
	ErrEmployeeCodeInUse = errors.New("employee code already in use")
)
