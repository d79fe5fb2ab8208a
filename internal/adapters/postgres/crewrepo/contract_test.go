package crewrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/contracttest"
	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/testutil"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	crewrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
)

func TestContract_CrewRepo(t *testing.T) {
	contracttest.RunCrewRepo(t, func(t *testing.T) (crewrepoport.Repository, func()) {
		t.Helper()
		pool := testutil.OpenMigratedPool(t)
		return NewRepo(pool), nil
	})
}

func TestRepo_GetByID_NonUUIDIsNotFound(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	_, err := NewRepo(pool).GetByID(context.Background(), domain.CrewMemberID("not-a-uuid"))
	if !errors.Is(err, crewrepoport.ErrNotFound) {
		t.Fatalf("GetByID() err=%v, want ErrNotFound", err)
	}
}
