package domain

// AircraftID is an internal identifier for an aircraft record.
type AircraftID string

// CrewMemberID is an internal identifier for a crew member (user) record.
type CrewMemberID string

// QualificationID is an internal identifier for a qualification record.
type QualificationID string
