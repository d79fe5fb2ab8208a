package crewrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
)

// Repo is an in-memory implementation of crewrepo.Repository.
// Records are normalized on write. It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.CrewMemberID]domain.CrewMember
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.CrewMemberID]domain.CrewMember)}
}

func (r *Repo) Create(ctx context.Context, c domain.CrewMember) error {
	_ = ctx
	c = c.Normalized()
	if c.ID == "" {
		return crewrepo.ErrAlreadyExists // treat empty ID as invalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; ok {
		return crewrepo.ErrAlreadyExists
	}
	if r.employeeCodeTakenLocked(c) {
		return crewrepo.ErrEmployeeCodeInUse
	}
	r.byID[c.ID] = cloneCrewMember(c)
	return nil
}

func (r *Repo) Update(ctx context.Context, c domain.CrewMember) error {
	_ = ctx
	c = c.Normalized()
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return crewrepo.ErrNotFound
	}
	if r.employeeCodeTakenLocked(c) {
		return crewrepo.ErrEmployeeCodeInUse
	}
	r.byID[c.ID] = cloneCrewMember(c)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.CrewMemberID) (domain.CrewMember, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.CrewMember{}, crewrepo.ErrNotFound
	}
	return cloneCrewMember(c), nil
}

func (r *Repo) List(ctx context.Context, includeInactive bool) ([]domain.CrewMember, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CrewMember, 0, len(r.byID))
	for _, c := range r.byID {
		if !includeInactive && !c.IsActive() {
			continue
		}
		out = append(out, cloneCrewMember(c))
	}
	sortCrewByName(out)
	return out, nil
}

func (r *Repo) employeeCodeTakenLocked(c domain.CrewMember) bool {
	if domain.IsBlank(c.EmployeeCode) {
		return false
	}
	for id, existing := range r.byID {
		if id == c.ID || domain.IsBlank(existing.EmployeeCode) {
			continue
		}
		if strings.EqualFold(*existing.EmployeeCode, *c.EmployeeCode) {
			return true
		}
	}
	return false
}

func cloneCrewMember(c domain.CrewMember) domain.CrewMember {
	out := c
	out.Phone = cloneStringPtr(c.Phone)
	out.Address = cloneStringPtr(c.Address)
	out.EmployeeCode = cloneStringPtr(c.EmployeeCode)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sortCrewByName(cs []domain.CrewMember) {
	sort.Slice(cs, func(i, j int) bool {
		ni := strings.ToLower(cs[i].Name)
		nj := strings.ToLower(cs[j].Name)
		if ni == nj {
			return string(cs[i].ID) < string(cs[j].ID)
		}
		return ni < nj
	})
}
