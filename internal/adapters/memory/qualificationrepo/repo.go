package qualificationrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

// Repo is an in-memory implementation of qualificationrepo.Repository.
// Owners are checked against the crew feed the repo was built with. It is safe for
// concurrent use.
type Repo struct {
	mu     sync.RWMutex
	m      map[domain.QualificationID]domain.Qualification
	owners crewrepo.Repository
}

func NewRepo(owners crewrepo.Repository) *Repo {
	return &Repo{m: make(map[domain.QualificationID]domain.Qualification), owners: owners}
}

func (r *Repo) Upsert(ctx context.Context, q domain.Qualification) error {
	if q.CrewMemberID == "" {
		return qualificationrepo.ErrUnknownCrewMember
	}
	if r.owners != nil {
		if _, err := r.owners.GetByID(ctx, q.CrewMemberID); err != nil {
			if errors.Is(err, crewrepo.ErrNotFound) {
				return qualificationrepo.ErrUnknownCrewMember
			}
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[q.ID] = cloneQualification(q.Normalized())
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.QualificationID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[id]; !ok {
		return qualificationrepo.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *Repo) ListByCrewMember(ctx context.Context, id domain.CrewMemberID) ([]domain.Qualification, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Qualification, 0)
	for _, q := range r.m {
		if q.CrewMemberID == id {
			out = append(out, cloneQualification(q))
		}
	}
	sortQualifications(out)
	return out, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Qualification, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Qualification, 0, len(r.m))
	for _, q := range r.m {
		out = append(out, cloneQualification(q))
	}
	sortQualifications(out)
	return out, nil
}

func sortQualifications(qs []domain.Qualification) {
	sort.Slice(qs, func(i, j int) bool {
		if qs[i].CrewMemberID == qs[j].CrewMemberID {
			return qs[i].ID < qs[j].ID
		}
		return qs[i].CrewMemberID < qs[j].CrewMemberID
	})
}

func cloneQualification(q domain.Qualification) domain.Qualification {
	out := q
	out.Code = cloneStringPtr(q.Code)
	out.AircraftType = cloneStringPtr(q.AircraftType)
	out.Level = cloneStringPtr(q.Level)
	if q.ExpiryDate != nil {
		v := *q.ExpiryDate
		out.ExpiryDate = &v
	}
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
