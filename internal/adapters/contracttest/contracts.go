package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	aircraftrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
	crewrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	qualificationrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

type CleanupFunc = func()

type AircraftRepoFactory func(t *testing.T) (aircraftrepoport.Repository, CleanupFunc)
type CrewRepoFactory func(t *testing.T) (crewrepoport.Repository, CleanupFunc)

// QualificationRepoFactory also returns the crew repository backing the same store, so the
// suite can provision owners before writing qualifications.
type QualificationRepoFactory func(t *testing.T) (qualificationrepoport.Repository, crewrepoport.Repository, CleanupFunc)

func RunAircraftRepo(t *testing.T, newRepo AircraftRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	suffix := uuid.NewString()[:8]
	aID := domain.AircraftID(uuid.NewString())
	a := domain.Aircraft{ID: aID, Registration: "zs-" + suffix, Type: "Phenom 300", Status: domain.AircraftStatusActive}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	got, err := repo.GetByID(ctx, aID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Registration != a.Registration || got.Type != a.Type || got.Status != a.Status {
		t.Fatalf("GetByID()=%+v, want %+v", got, a)
	}

	// Duplicate ID.
	if err := repo.Create(ctx, domain.Aircraft{ID: aID, Registration: "other-" + suffix, Type: "X"}); !errors.Is(err, aircraftrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate id err=%v, want ErrAlreadyExists", err)
	}
	// Registration uniqueness is case-insensitive.
	if err := repo.Create(ctx, domain.Aircraft{ID: domain.AircraftID(uuid.NewString()), Registration: "ZS-" + suffix, Type: "X"}); !errors.Is(err, aircraftrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate registration err=%v, want ErrAlreadyExists", err)
	}

	// Deterministic list ordering by registration (case-insensitive).
	bID := domain.AircraftID(uuid.NewString())
	if err := repo.Create(ctx, domain.Aircraft{ID: bID, Registration: "AA-" + suffix, Type: "Citation CJ3", Status: domain.AircraftStatusMaintenance}); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ia, ib := indexOfAircraft(list, aID), indexOfAircraft(list, bID)
	if ia < 0 || ib < 0 || ib > ia {
		t.Fatalf("List order: AA-* at %d, ZS-* at %d", ib, ia)
	}

	// Save.
	a.Status = domain.AircraftStatusMaintenance
	a.Type = "Phenom 300E"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = repo.GetByID(ctx, aID)
	if err != nil || got.Status != domain.AircraftStatusMaintenance || got.Type != "Phenom 300E" {
		t.Fatalf("GetByID after Save=%+v err=%v", got, err)
	}
	if err := repo.Save(ctx, domain.Aircraft{ID: domain.AircraftID(uuid.NewString()), Registration: "NEW-" + suffix}); !errors.Is(err, aircraftrepoport.ErrNotFound) {
		t.Fatalf("Save nonexistent err=%v, want ErrNotFound", err)
	}

	if _, err := repo.GetByID(ctx, domain.AircraftID(uuid.NewString())); !errors.Is(err, aircraftrepoport.ErrNotFound) {
		t.Fatalf("GetByID nonexistent err=%v, want ErrNotFound", err)
	}
}

func RunCrewRepo(t *testing.T, newRepo CrewRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	suffix := uuid.NewString()[:8]
	phone := "+1 555 0100"
	code := "EMP-" + suffix
	aID := domain.CrewMemberID(uuid.NewString())
	a := domain.CrewMember{
		ID:           aID,
		Name:         "zulu " + suffix,
		Phone:        &phone,
		EmployeeCode: &code,
		Position:     domain.PositionCaptain,
		Status:       domain.AccountStatusActive,
		Role:         domain.RoleInternal,
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	got, err := repo.GetByID(ctx, aID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != a.Name || got.Position != a.Position || got.Role != a.Role || got.Phone == nil || *got.Phone != phone || got.Address != nil {
		t.Fatalf("GetByID()=%+v, want %+v", got, a)
	}

	if err := repo.Create(ctx, a); !errors.Is(err, crewrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}
	dupCode := "emp-" + suffix
	if err := repo.Create(ctx, domain.CrewMember{
		ID:           domain.CrewMemberID(uuid.NewString()),
		Name:         "Copy",
		EmployeeCode: &dupCode,
		Status:       domain.AccountStatusActive,
	}); !errors.Is(err, crewrepoport.ErrEmployeeCodeInUse) {
		t.Fatalf("Create duplicate employee code err=%v, want ErrEmployeeCodeInUse", err)
	}

	bID := domain.CrewMemberID(uuid.NewString())
	if err := repo.Create(ctx, domain.CrewMember{
		ID:       bID,
		Name:     "Alpha " + suffix,
		Position: domain.PositionFlightAttendant,
		Status:   domain.AccountStatusSuspended,
		Role:     domain.RoleFreelancer,
	}); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	active, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List(false): %v", err)
	}
	if indexOfCrew(active, aID) < 0 || indexOfCrew(active, bID) >= 0 {
		t.Fatalf("List(includeInactive=false) should contain only active members")
	}
	all, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List(true): %v", err)
	}
	ia, ib := indexOfCrew(all, aID), indexOfCrew(all, bID)
	if ia < 0 || ib < 0 || ib > ia {
		t.Fatalf("List order: Alpha at %d, zulu at %d", ib, ia)
	}

	// Update clears optional fields and changes status.
	a.Phone = nil
	a.Status = domain.AccountStatusInactive
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, aID)
	if err != nil || got.Phone != nil || got.Status != domain.AccountStatusInactive {
		t.Fatalf("GetByID after Update=%+v err=%v", got, err)
	}
	if err := repo.Update(ctx, domain.CrewMember{ID: domain.CrewMemberID(uuid.NewString()), Name: "Ghost"}); !errors.Is(err, crewrepoport.ErrNotFound) {
		t.Fatalf("Update nonexistent err=%v, want ErrNotFound", err)
	}

	// Display titles and mixed-case enumerations come back canonical.
	cID := domain.CrewMemberID(uuid.NewString())
	if err := repo.Create(ctx, domain.CrewMember{
		ID:       cID,
		Name:     "Titled " + suffix,
		Position: domain.Position("Captain"),
		Status:   domain.AccountStatus(" Active "),
		Role:     domain.Role("Internal"),
	}); err != nil {
		t.Fatalf("Create titled: %v", err)
	}
	got, err = repo.GetByID(ctx, cID)
	if err != nil {
		t.Fatalf("GetByID titled: %v", err)
	}
	if got.Position != domain.PositionCaptain || got.Status != domain.AccountStatusActive || got.Role != domain.RoleInternal {
		t.Fatalf("GetByID titled=%+v, want CAPTAIN/active/internal", got)
	}
	active, err = repo.List(ctx, false)
	if err != nil || indexOfCrew(active, cID) < 0 {
		t.Fatalf("List(false) should include member stored with status %q, err=%v", " Active ", err)
	}
}

func RunQualificationRepo(t *testing.T, newRepo QualificationRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, crew, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	owner := domain.CrewMemberID(uuid.NewString())
	other := domain.CrewMemberID(uuid.NewString())
	for _, id := range []domain.CrewMemberID{owner, other} {
		if err := crew.Create(ctx, domain.CrewMember{ID: id, Name: "Owner " + string(id)[:8], Status: domain.AccountStatusActive}); err != nil {
			t.Fatalf("Create crew %s: %v", id, err)
		}
	}

	expiry := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	acType := "Phenom 300"
	q1 := domain.Qualification{
		ID:           domain.QualificationID(uuid.NewString()),
		CrewMemberID: owner,
		Kind:         domain.QualificationKindTypeRating,
		AircraftType: &acType,
		Valid:        true,
		ExpiryDate:   &expiry,
	}
	code := "CABIN_SAFETY"
	q2 := domain.Qualification{
		ID:           domain.QualificationID(uuid.NewString()),
		CrewMemberID: other,
		Kind:         domain.QualificationKindTraining,
		Code:         &code,
		Valid:        false,
	}
	for _, q := range []domain.Qualification{q1, q2} {
		if err := repo.Upsert(ctx, q); err != nil {
			t.Fatalf("Upsert %s: %v", q.ID, err)
		}
	}

	own, err := repo.ListByCrewMember(ctx, owner)
	if err != nil {
		t.Fatalf("ListByCrewMember: %v", err)
	}
	if len(own) != 1 || own[0].ID != q1.ID {
		t.Fatalf("ListByCrewMember()=%+v, want [%s]", own, q1.ID)
	}
	if own[0].ExpiryDate == nil || !own[0].ExpiryDate.Equal(expiry) || own[0].AircraftType == nil || *own[0].AircraftType != acType {
		t.Fatalf("round-trip lost fields: %+v", own[0])
	}

	// Last write wins.
	q1.Valid = false
	q1.ExpiryDate = nil
	if err := repo.Upsert(ctx, q1); err != nil {
		t.Fatalf("Upsert overwrite: %v", err)
	}
	own, err = repo.ListByCrewMember(ctx, owner)
	if err != nil || len(own) != 1 || own[0].Valid || own[0].ExpiryDate != nil {
		t.Fatalf("after overwrite=%+v err=%v", own, err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if !containsQualification(all, q1.ID) || !containsQualification(all, q2.ID) {
		t.Fatalf("ListAll() missing records")
	}

	if err := repo.Upsert(ctx, domain.Qualification{ID: domain.QualificationID(uuid.NewString()), Kind: domain.QualificationKindLicense}); !errors.Is(err, qualificationrepoport.ErrUnknownCrewMember) {
		t.Fatalf("Upsert without owner err=%v, want ErrUnknownCrewMember", err)
	}
	ghost := domain.CrewMemberID(uuid.NewString())
	if err := repo.Upsert(ctx, domain.Qualification{ID: domain.QualificationID(uuid.NewString()), CrewMemberID: ghost, Kind: domain.QualificationKindLicense}); !errors.Is(err, qualificationrepoport.ErrUnknownCrewMember) {
		t.Fatalf("Upsert with unknown owner err=%v, want ErrUnknownCrewMember", err)
	}

	// Expiry is a calendar date: the time of day is dropped and the kind is canonical.
	late := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	q3 := domain.Qualification{
		ID:           domain.QualificationID(uuid.NewString()),
		CrewMemberID: other,
		Kind:         domain.QualificationKind("license"),
		Valid:        true,
		ExpiryDate:   &late,
	}
	if err := repo.Upsert(ctx, q3); err != nil {
		t.Fatalf("Upsert q3: %v", err)
	}
	theirs, err := repo.ListByCrewMember(ctx, other)
	if err != nil {
		t.Fatalf("ListByCrewMember(other): %v", err)
	}
	i := indexOfQualification(theirs, q3.ID)
	if i < 0 {
		t.Fatalf("ListByCrewMember(other) missing %s", q3.ID)
	}
	wantExpiry := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if theirs[i].Kind != domain.QualificationKindLicense || theirs[i].ExpiryDate == nil || !theirs[i].ExpiryDate.Equal(wantExpiry) {
		t.Fatalf("stored q3=%+v expiry=%v, want LICENSE expiring %v", theirs[i], theirs[i].ExpiryDate, wantExpiry)
	}

	if err := repo.Delete(ctx, q2.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, q2.ID); !errors.Is(err, qualificationrepoport.ErrNotFound) {
		t.Fatalf("Delete twice err=%v, want ErrNotFound", err)
	}
}

func indexOfAircraft(as []domain.Aircraft, id domain.AircraftID) int {
	for i, a := range as {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func indexOfCrew(cs []domain.CrewMember, id domain.CrewMemberID) int {
	for i, c := range cs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func indexOfQualification(qs []domain.Qualification, id domain.QualificationID) int {
	for i, q := range qs {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func containsQualification(qs []domain.Qualification, id domain.QualificationID) bool {
	for _, q := range qs {
		if q.ID == id {
			return true
		}
	}
	return false
}
