package eligibility

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// CabinSafetyCode is the TRAINING code that satisfies the cabin-crew requirement.
const CabinSafetyCode = "CABIN_SAFETY"

// MatchesAircraft reports whether a type-rating's free-text aircraft type refers to ac.
// It accepts either the aircraft's type name or its registration as a case-insensitive
// substring. Empty needles never match.
//
// This is the only place that interprets free-text aircraft types.
func MatchesAircraft(aircraftType string, ac domain.Aircraft) bool {
	hay := fold(aircraftType)
	if hay == "" {
		return false
	}
	for _, needle := range []string{ac.Type, ac.Registration} {
		n := fold(needle)
		if n != "" && strings.Contains(hay, n) {
			return true
		}
	}
	return false
}

// IsCabinSafetyTraining reports whether q is a TRAINING record carrying the cabin-safety code.
func IsCabinSafetyTraining(q domain.Qualification) bool {
	if q.Kind != domain.QualificationKindTraining || q.Code == nil {
		return false
	}
	return fold(*q.Code) == fold(CabinSafetyCode)
}

func fold(s string) string {
	// cases.Caser is stateful and not safe for concurrent use; build one per call.
	return cases.Fold().String(domain.NormalizeHumanName(s))
}
