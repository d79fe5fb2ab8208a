package eligibility

import (
	"time"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func phenom() *domain.Aircraft {
	return &domain.Aircraft{ID: "ac-1", Registration: "PR-ABC", Type: "Phenom 300", Status: domain.AircraftStatusActive}
}

func captain(id domain.CrewMemberID) domain.CrewMember {
	return domain.CrewMember{
		ID:           id,
		Name:         "Ana Costa",
		Phone:        strPtr("+55 11 5555-0100"),
		Address:      strPtr("Rua A, 100"),
		EmployeeCode: strPtr("EMP-001"),
		Position:     domain.PositionCaptain,
		Status:       domain.AccountStatusActive,
		Role:         domain.RoleInternal,
	}
}

func attendant(id domain.CrewMemberID) domain.CrewMember {
	c := captain(id)
	c.Name = "Bia Lima"
	c.Position = domain.PositionFlightAttendant
	return c
}

func typeRating(id domain.QualificationID, owner domain.CrewMemberID, aircraftType string) domain.Qualification {
	return domain.Qualification{
		ID:           id,
		CrewMemberID: owner,
		Kind:         domain.QualificationKindTypeRating,
		Code:         strPtr("TR"),
		AircraftType: strPtr(aircraftType),
		Valid:        true,
	}
}

func license(id domain.QualificationID, owner domain.CrewMemberID) domain.Qualification {
	return domain.Qualification{
		ID:           id,
		CrewMemberID: owner,
		Kind:         domain.QualificationKindLicense,
		Code:         strPtr("ATPL"),
		Level:        strPtr("ATPL"),
		Valid:        true,
	}
}

func cabinSafety(id domain.QualificationID, owner domain.CrewMemberID) domain.Qualification {
	return domain.Qualification{
		ID:           id,
		CrewMemberID: owner,
		Kind:         domain.QualificationKindTraining,
		Code:         strPtr(CabinSafetyCode),
		Valid:        true,
	}
}
