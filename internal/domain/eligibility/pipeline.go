package eligibility

import (
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// QualificationSummary groups a crew member's own qualifications by effective validity.
type QualificationSummary struct {
	Valid   []domain.Qualification
	Expired []domain.Qualification // flagged valid but past expiry
	Invalid []domain.Qualification // flagged invalid by the issuer

	HasTypeRating  bool
	HasCabinSafety bool
}

// ProcessedCrewMember is the display-ready view of one crew member. It is rebuilt on
// every pass and never persisted.
type ProcessedCrewMember struct {
	CrewMember domain.CrewMember

	RoleLabel        string
	DisplayPosition  string
	Status           Status
	MissingDocuments []string
	Qualified        bool
	Qualifications   QualificationSummary
}

// Process evaluates every crew member against ac (nil means no aircraft context).
// Output has one record per input crew member, in input order. Inputs are not modified.
func Process(ac *domain.Aircraft, crew []domain.CrewMember, quals []domain.Qualification, now time.Time) []ProcessedCrewMember {
	byMember := partition(quals)

	out := make([]ProcessedCrewMember, 0, len(crew))
	for _, c := range crew {
		own := byMember[c.ID]

		qualified := IsEligible(c, ac, own, now)
		missing := MissingDocuments(c, own, now)

		out = append(out, ProcessedCrewMember{
			CrewMember:       c,
			RoleLabel:        RoleLabel(c.Role),
			DisplayPosition:  DisplayPosition(c.Position),
			Status:           DeriveStatus(c, qualified, missing),
			MissingDocuments: missing,
			Qualified:        qualified,
			Qualifications:   summarize(own, now),
		})
	}
	return out
}

// RoleLabel returns the display label for a role classification.
func RoleLabel(r domain.Role) string {
	switch r {
	case domain.RoleInternal:
		return "Internal"
	case domain.RoleFreelancer:
		return "Freelancer"
	case domain.RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

func partition(quals []domain.Qualification) map[domain.CrewMemberID][]domain.Qualification {
	m := make(map[domain.CrewMemberID][]domain.Qualification)
	for _, q := range quals {
		m[q.CrewMemberID] = append(m[q.CrewMemberID], q)
	}
	return m
}

func summarize(own []domain.Qualification, now time.Time) QualificationSummary {
	s := QualificationSummary{
		Valid:   []domain.Qualification{},
		Expired: []domain.Qualification{},
		Invalid: []domain.Qualification{},
	}
	for _, q := range own {
		switch {
		case !q.Valid:
			s.Invalid = append(s.Invalid, q)
		case IsExpired(q, now):
			s.Expired = append(s.Expired, q)
		default:
			s.Valid = append(s.Valid, q)
			if q.Kind == domain.QualificationKindTypeRating {
				s.HasTypeRating = true
			}
			if IsCabinSafetyTraining(q) {
				s.HasCabinSafety = true
			}
		}
	}
	return s
}
