package crewrepo

import (
	"context"
	"testing"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
)

func TestRepo_CreateRejectsEmptyID(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	if err := r.Create(context.Background(), domain.CrewMember{Name: "A"}); err != crewrepo.ErrAlreadyExists {
		t.Fatalf("Create(empty id) err=%v, want %v", err, crewrepo.ErrAlreadyExists)
	}
}

func TestRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	phone := "+1 555 0100"
	if err := r.Create(context.Background(), domain.CrewMember{ID: "c1", Name: "A", Phone: &phone, Status: domain.AccountStatusActive}); err != nil {
		t.Fatalf("Create() err=%v", err)
	}
	phone = "mutated"

	got, err := r.GetByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetByID() err=%v", err)
	}
	if *got.Phone != "+1 555 0100" {
		t.Fatalf("stored phone changed through caller pointer: %q", *got.Phone)
	}
	*got.Phone = "also mutated"
	again, _ := r.GetByID(context.Background(), "c1")
	if *again.Phone != "+1 555 0100" {
		t.Fatalf("stored phone changed through returned pointer: %q", *again.Phone)
	}
}

func TestRepo_ListOrdersByNameThenID(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	_ = r.Create(context.Background(), domain.CrewMember{ID: "c2", Name: "bob", Status: domain.AccountStatusActive})
	_ = r.Create(context.Background(), domain.CrewMember{ID: "c1", Name: "Alice", Status: domain.AccountStatusActive})
	_ = r.Create(context.Background(), domain.CrewMember{ID: "c3", Name: "Bob", Status: domain.AccountStatusActive})

	got, err := r.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if len(got) != 3 || got[0].ID != "c1" || got[1].ID != "c2" || got[2].ID != "c3" {
		t.Fatalf("List() order=%v", []domain.CrewMemberID{got[0].ID, got[1].ID, got[2].ID})
	}
}

func TestRepo_BlankEmployeeCodesDoNotCollide(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	blank := " "
	if err := r.Create(context.Background(), domain.CrewMember{ID: "c1", Name: "A", EmployeeCode: &blank}); err != nil {
		t.Fatalf("Create(c1) err=%v", err)
	}
	if err := r.Create(context.Background(), domain.CrewMember{ID: "c2", Name: "B", EmployeeCode: &blank}); err != nil {
		t.Fatalf("Create(c2) err=%v", err)
	}
}
