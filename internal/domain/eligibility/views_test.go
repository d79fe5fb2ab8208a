package eligibility

import (
	"testing"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

func TestViews(t *testing.T) {
	t.Parallel()

	inactive := captain("c3")
	inactive.Status = domain.AccountStatusSuspended
	noPhone := attendant("c4")
	noPhone.Phone = nil

	crew := []domain.CrewMember{captain("c1"), attendant("c2"), inactive, noPhone}
	quals := []domain.Qualification{
		typeRating("q1", "c1", "Phenom 300"),
		license("q2", "c1"),
		cabinSafety("q3", "c4"),
	}
	rows := Process(phenom(), crew, quals, now)

	av := Available(rows)
	if len(av) != 1 || av[0].CrewMember.ID != "c1" {
		t.Fatalf("Available()=%v", ids(av))
	}
	q := Qualified(rows)
	if len(q) != 2 || q[0].CrewMember.ID != "c1" || q[1].CrewMember.ID != "c4" {
		t.Fatalf("Qualified()=%v", ids(q))
	}
	tally := CountByColor(rows)
	want := Tally{Available: 1, Incomplete: 1, Missing: 1, Inactive: 1}
	if tally != want || tally.Total() != len(rows) {
		t.Fatalf("CountByColor()=%+v, want %+v", tally, want)
	}
}

func ids(rows []ProcessedCrewMember) []domain.CrewMemberID {
	out := make([]domain.CrewMemberID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CrewMember.ID)
	}
	return out
}
