package qualificationrepo

import "errors"

var (
	// ErrNotFound indicates the requested qualification does not exist.
	ErrNotFound = errors.New("qualification not found")

	// ErrUnknownCrewMember indicates the qualification references a crew member that does not exist.
	ErrUnknownCrewMember = errors.New("qualification references unknown crew member")
)
