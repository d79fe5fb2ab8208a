package eligibility

import (
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// IsExpired reports whether q's expiry date lies strictly before now.
// A qualification without an expiry date never expires.
func IsExpired(q domain.Qualification, now time.Time) bool {
	if q.ExpiryDate == nil {
		return false
	}
	return q.ExpiryDate.Before(now)
}

// IsEffectivelyValid reports whether q is flagged valid and not expired.
func IsEffectivelyValid(q domain.Qualification, now time.Time) bool {
	return q.Valid && !IsExpired(q, now)
}
