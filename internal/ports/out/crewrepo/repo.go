package crewrepo

import (
	"context"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// Repository is the crew roster feed.
//
// List returns crew ordered by Name ascending (case-insensitive), ties broken by ID,
// so downstream evaluation output is stable.
type Repository interface {
	Create(ctx context.Context, c domain.CrewMember) error
	Update(ctx context.Context, c domain.CrewMember) error

	GetByID(ctx context.Context, id domain.CrewMemberID) (domain.CrewMember, error)

	// List returns crew members; inactive and suspended accounts are omitted unless includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]domain.CrewMember, error)
}
