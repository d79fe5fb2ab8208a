package domain

import (
	"strings"
	"time"
)

type QualificationKind string

const (
	QualificationKindTypeRating QualificationKind = "TYPE_RATING"
	QualificationKindLicense    QualificationKind = "LICENSE"
	QualificationKindTraining   QualificationKind = "TRAINING"
	QualificationKindCompetency QualificationKind = "COMPETENCY"
)

// Valid reports whether k is one of the known kinds.
func (k QualificationKind) Valid() bool {
	switch k {
	case QualificationKindTypeRating, QualificationKindLicense, QualificationKindTraining, QualificationKindCompetency:
		return true
	}
	return false
}

// ParseQualificationKind maps loosely formatted kinds ("type rating", "license") onto
// the known kinds. Unknown kinds are returned trimmed.
func ParseQualificationKind(s string) QualificationKind {
	t := strings.TrimSpace(s)
	if k := QualificationKind(enumKey(t)); k.Valid() {
		return k
	}
	return QualificationKind(t)
}

// Qualification belongs to exactly one crew member.
type Qualification struct {
	ID           QualificationID
	CrewMemberID CrewMemberID

	Kind QualificationKind

	Code         *string
	AircraftType *string // populated for TYPE_RATING
	Level        *string // populated for LICENSE

	// Valid is set by the issuing authority.
	Valid bool
	// ExpiryDate has date-only semantics (midnight UTC); nil means it never expires.
	ExpiryDate *time.Time
}

// Normalized returns q with a canonical kind and a date-only expiry.
func (q Qualification) Normalized() Qualification {
	q.Kind = ParseQualificationKind(string(q.Kind))
	if q.ExpiryDate != nil {
		d := DateOnly(*q.ExpiryDate)
		q.ExpiryDate = &d
	}
	return q
}
