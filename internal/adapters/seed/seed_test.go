package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	memaircraftrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/aircraftrepo"
	memcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/crewrepo"
	memqualificationrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/qualificationrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

const fleet = `{
	"aircraft": [{"id": "ac-1", "registration": "PR-ABC", "type": "Phenom  300", "status": "ACTIVE"}],
	"crewMembers": [
		{"id": "c1", "name": "Ana Lima", "phone": "1", "address": "A", "employeeCode": "E1",
		 "position": "Captain", "status": "Active", "role": "Internal"}
	],
	"qualifications": [
		{"id": "q1", "crewMemberId": "c1", "kind": "type rating", "aircraftType": "Phenom 300", "valid": true, "expiryDate": "2025-03-31"},
		{"id": "q2", "crewMemberId": "c1", "kind": "LICENSE", "level": "ATP", "valid": true}
	]
}`

func newStores() Stores {
	crew := memcrewrepo.NewRepo()
	return Stores{
		Aircraft:       memaircraftrepo.NewRepo(),
		Crew:           crew,
		Qualifications: memqualificationrepo.NewRepo(crew),
	}
}

func TestLoad_WritesNormalizedRecords(t *testing.T) {
	t.Parallel()

	st := newStores()
	ctx := context.Background()
	res, err := Load(ctx, strings.NewReader(fleet), st)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if res != (Result{Aircraft: 1, CrewMembers: 1, Qualifications: 2}) {
		t.Fatalf("Load()=%+v", res)
	}

	a, err := st.Aircraft.GetByID(ctx, "ac-1")
	if err != nil || a.Type != "Phenom 300" {
		t.Fatalf("aircraft=%+v err=%v", a, err)
	}
	c, err := st.Crew.GetByID(ctx, "c1")
	if err != nil || c.Position != domain.PositionCaptain || c.Role != domain.RoleInternal || !c.IsActive() {
		t.Fatalf("crew=%+v err=%v", c, err)
	}
	qs, err := st.Qualifications.ListByCrewMember(ctx, "c1")
	if err != nil || len(qs) != 2 {
		t.Fatalf("qualifications=%+v err=%v", qs, err)
	}
	want := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	if qs[0].Kind != domain.QualificationKindTypeRating || qs[0].ExpiryDate == nil || !qs[0].ExpiryDate.Equal(want) {
		t.Fatalf("q1=%+v", qs[0])
	}
}

func TestLoad_TwiceIsHarmless(t *testing.T) {
	t.Parallel()

	st := newStores()
	ctx := context.Background()
	if _, err := Load(ctx, strings.NewReader(fleet), st); err != nil {
		t.Fatalf("first Load() err=%v", err)
	}
	res, err := Load(ctx, strings.NewReader(fleet), st)
	if err != nil {
		t.Fatalf("second Load() err=%v", err)
	}
	if res.Skipped != 2 || res.Aircraft != 0 || res.CrewMembers != 0 || res.Qualifications != 2 {
		t.Fatalf("second Load()=%+v", res)
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, err := Load(ctx, strings.NewReader(`{"pilots": []}`), newStores()); err == nil {
		t.Fatalf("Load(unknown field) err=nil")
	}
	_, err := Load(ctx, strings.NewReader(`{"qualifications": [{"id": "q", "crewMemberId": "ghost", "kind": "LICENSE", "valid": true}]}`), newStores())
	if !errors.Is(err, qualificationrepo.ErrUnknownCrewMember) {
		t.Fatalf("Load(unknown owner) err=%v, want ErrUnknownCrewMember", err)
	}
	if _, err := Load(ctx, strings.NewReader(`{"crewMembers": [{"id": "c", "name": "C", "status": "active"}], "qualifications": [{"id": "q", "crewMemberId": "c", "kind": "VISA"}]}`), newStores()); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("Load(unknown kind) err=%v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(fleet), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	res, err := LoadFile(context.Background(), path, newStores())
	if err != nil || res.CrewMembers != 1 {
		t.Fatalf("LoadFile()=%+v err=%v", res, err)
	}
	if _, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"), newStores()); err == nil {
		t.Fatalf("LoadFile(missing) err=nil")
	}
}
