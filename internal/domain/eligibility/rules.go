package eligibility

import (
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// RequirementKind names the qualification a position must hold to crew an aircraft.
type RequirementKind int

const (
	// RequirementUndefined is used for positions without a rule; it never passes.
	RequirementUndefined RequirementKind = iota
	// RequirementTypeRating needs a TYPE_RATING matching the aircraft.
	RequirementTypeRating
	// RequirementCabinSafety needs cabin-safety TRAINING.
	RequirementCabinSafety
)

func (k RequirementKind) String() string {
	switch k {
	case RequirementTypeRating:
		return "TYPE_RATING"
	case RequirementCabinSafety:
		return "CABIN_SAFETY"
	default:
		return "UNDEFINED"
	}
}

type positionRule struct {
	requirement RequirementKind
	label       string
	pilot       bool
}

// positionRules is the single dispatch table for position-dependent behavior.
var positionRules = map[domain.Position]positionRule{
	domain.PositionCaptain:               {requirement: RequirementTypeRating, label: "Captain", pilot: true},
	domain.PositionFirstOfficer:          {requirement: RequirementTypeRating, label: "First Officer", pilot: true},
	domain.PositionFlightAttendant:       {requirement: RequirementCabinSafety, label: "Flight Attendant"},
	domain.PositionSeniorFlightAttendant: {requirement: RequirementCabinSafety, label: "Senior Flight Attendant"},
}

// RequirementFor returns the requirement for a position.
func RequirementFor(p domain.Position) RequirementKind {
	return positionRules[p].requirement
}

// IsPilot reports whether p is a flight-deck position.
func IsPilot(p domain.Position) bool {
	return positionRules[p].pilot
}

// DisplayPosition returns the human label for p. Unknown positions are shown as recorded.
func DisplayPosition(p domain.Position) string {
	if r, ok := positionRules[p]; ok {
		return r.label
	}
	if s := domain.NormalizeHumanName(string(p)); s != "" {
		return s
	}
	return "Unassigned"
}

// IsEligible reports whether crew member c holds the qualification its position
// requires for ac. A nil aircraft means no aircraft context, and everyone is eligible.
// Qualifications belonging to other crew members are ignored.
func IsEligible(c domain.CrewMember, ac *domain.Aircraft, quals []domain.Qualification, now time.Time) bool {
	if ac == nil {
		return true
	}
	return satisfies(RequirementFor(c.Position), *ac, validOwn(c.ID, quals, now))
}

func satisfies(req RequirementKind, ac domain.Aircraft, valid []domain.Qualification) bool {
	switch req {
	case RequirementTypeRating:
		for _, q := range valid {
			if q.Kind == domain.QualificationKindTypeRating && q.AircraftType != nil && MatchesAircraft(*q.AircraftType, ac) {
				return true
			}
		}
	case RequirementCabinSafety:
		for _, q := range valid {
			if IsCabinSafetyTraining(q) {
				return true
			}
		}
	}
	return false
}

func validOwn(id domain.CrewMemberID, quals []domain.Qualification, now time.Time) []domain.Qualification {
	out := make([]domain.Qualification, 0, len(quals))
	for _, q := range quals {
		if q.CrewMemberID == id && IsEffectivelyValid(q, now) {
			out = append(out, q)
		}
	}
	return out
}
