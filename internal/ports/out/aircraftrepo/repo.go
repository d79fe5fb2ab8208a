package aircraftrepo

import (
	"context"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// Repository is the fleet feed.
//
// Result ordering expectations:
// - List returns aircraft ordered by Registration ascending (case-insensitive), ties broken by ID.
type Repository interface {
	Create(ctx context.Context, a domain.Aircraft) error
	Save(ctx context.Context, a domain.Aircraft) error

	GetByID(ctx context.Context, id domain.AircraftID) (domain.Aircraft, error)
	List(ctx context.Context) ([]domain.Aircraft, error)
}
