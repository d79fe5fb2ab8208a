package qualificationrepo

import (
	"context"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// Repository is the qualification feed.
//
// Results are ordered by CrewMemberID, then ID.
type Repository interface {
	// Upsert writes the qualification using last-write-wins semantics.
	Upsert(ctx context.Context, q domain.Qualification) error
	Delete(ctx context.Context, id domain.QualificationID) error

	// ListByCrewMember returns all qualifications owned by one crew member.
	ListByCrewMember(ctx context.Context, id domain.CrewMemberID) ([]domain.Qualification, error)

	// ListAll returns every qualification; it feeds whole-roster evaluation.
	ListAll(ctx context.Context) ([]domain.Qualification, error)
}
