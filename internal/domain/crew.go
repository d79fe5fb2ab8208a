package domain

import "strings"

// Position is a crew member's seat. Values outside the known set are kept verbatim.
type Position string

const (
	PositionCaptain               Position = "CAPTAIN"
	PositionFirstOfficer          Position = "FIRST_OFFICER"
	PositionFlightAttendant       Position = "FLIGHT_ATTENDANT"
	PositionSeniorFlightAttendant Position = "SENIOR_FLIGHT_ATTENDANT"
)

// ParsePosition maps loosely formatted titles ("First Officer", "first_officer")
// onto the known positions. Unknown titles are returned trimmed but otherwise unchanged.
func ParsePosition(s string) Position {
	t := strings.TrimSpace(s)
	key := enumKey(t)
	switch Position(key) {
	case PositionCaptain, PositionFirstOfficer, PositionFlightAttendant, PositionSeniorFlightAttendant:
		return Position(key)
	}
	return Position(t)
}

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusInactive  AccountStatus = "inactive"
	AccountStatusSuspended AccountStatus = "suspended"
)

// ParseAccountStatus lower-cases and trims s.
func ParseAccountStatus(s string) AccountStatus {
	return AccountStatus(strings.ToLower(strings.TrimSpace(s)))
}

type Role string

const (
	RoleInternal   Role = "internal"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

// ParseRole lower-cases and trims s.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// CrewMember is the roster record (a.k.a. user). Optional contact fields are nil when unset.
type CrewMember struct {
	ID   CrewMemberID
	Name string

	Phone        *string
	Address      *string
	EmployeeCode *string

	Position Position
	Status   AccountStatus
	Role     Role
}

// IsActive reports whether the account is active. Comparison is case-insensitive.
func (c CrewMember) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(string(c.Status)), string(AccountStatusActive))
}

// Normalized returns c with its enumerated fields in canonical form. Feed adapters apply
// it so stored records evaluate the same way as records arriving over the API.
func (c CrewMember) Normalized() CrewMember {
	c.Position = ParsePosition(string(c.Position))
	c.Status = ParseAccountStatus(string(c.Status))
	c.Role = ParseRole(string(c.Role))
	return c
}
