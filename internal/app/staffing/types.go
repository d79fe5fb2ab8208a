package staffing

import (
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain/eligibility"
)

// EvaluateCrewInput selects what the stored roster is evaluated against.
type EvaluateCrewInput struct {
	// AircraftID nil means no aircraft context; everyone is qualified.
	AircraftID *domain.AircraftID
	// AvailableOnly drops every row without the green badge.
	AvailableOnly bool
}

// EvaluateInput is a caller-supplied snapshot for stateless evaluation.
type EvaluateInput struct {
	Aircraft       *domain.Aircraft
	CrewMembers    []domain.CrewMember
	Qualifications []domain.Qualification
	// Now overrides the service clock when set.
	Now *time.Time
}

// Evaluation is the result of one evaluation pass.
// Tally always covers the full roster, even when Crew was filtered.
type Evaluation struct {
	EvaluatedAt time.Time
	Aircraft    *domain.Aircraft
	Crew        []eligibility.ProcessedCrewMember
	Tally       eligibility.Tally
}
