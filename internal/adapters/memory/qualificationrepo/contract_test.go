package qualificationrepo

import (
	"testing"

	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/contracttest"
	memcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/crewrepo"
	crewrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	qualificationrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

func TestContract_QualificationRepo(t *testing.T) {
	contracttest.RunQualificationRepo(t, func(t *testing.T) (qualificationrepoport.Repository, crewrepoport.Repository, func()) {
		t.Helper()
		crew := memcrewrepo.NewRepo()
		return NewRepo(crew), crew, nil
	})
}
