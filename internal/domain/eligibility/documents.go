package eligibility

import (
	"fmt"
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

const (
	MissingPhone        = "Phone"
	MissingAddress      = "Address"
	MissingEmployeeCode = "Employee code"
	MissingLicense      = "Valid license missing"
)

// MissingDocuments lists profile, document and qualification gaps for c in a fixed order:
// phone, address, employee code, expired qualifications (one summary entry), and for
// pilots a valid license. It is independent of eligibility.
func MissingDocuments(c domain.CrewMember, quals []domain.Qualification, now time.Time) []string {
	out := make([]string, 0, 5)
	if domain.IsBlank(c.Phone) {
		out = append(out, MissingPhone)
	}
	if domain.IsBlank(c.Address) {
		out = append(out, MissingAddress)
	}
	if domain.IsBlank(c.EmployeeCode) {
		out = append(out, MissingEmployeeCode)
	}

	expired := 0
	hasLicense := false
	for _, q := range quals {
		if q.CrewMemberID != c.ID {
			continue
		}
		if q.Valid && IsExpired(q, now) {
			expired++
		}
		if q.Kind == domain.QualificationKindLicense && IsEffectivelyValid(q, now) {
			hasLicense = true
		}
	}
	if expired > 0 {
		out = append(out, ExpiredSummary(expired))
	}
	if IsPilot(c.Position) && !hasLicense {
		out = append(out, MissingLicense)
	}
	return out
}

// ExpiredSummary is the single missing-document entry for n expired qualifications.
func ExpiredSummary(n int) string {
	return fmt.Sprintf("%d expired qualification(s)", n)
}
