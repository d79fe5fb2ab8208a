package aircraftrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
)

// Repo is an in-memory implementation of aircraftrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.AircraftID]domain.Aircraft
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.AircraftID]domain.Aircraft)}
}

func (r *Repo) Create(ctx context.Context, a domain.Aircraft) error {
	_ = ctx
	if a.ID == "" {
		return aircraftrepo.ErrAlreadyExists // treat empty ID as invalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; ok {
		return aircraftrepo.ErrAlreadyExists
	}
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Registration, a.Registration) {
			return aircraftrepo.ErrAlreadyExists
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *Repo) Save(ctx context.Context, a domain.Aircraft) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return aircraftrepo.ErrNotFound
	}
	for id, existing := range r.byID {
		if id != a.ID && strings.EqualFold(existing.Registration, a.Registration) {
			return aircraftrepo.ErrAlreadyExists
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.AircraftID) (domain.Aircraft, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.Aircraft{}, aircraftrepo.ErrNotFound
	}
	return a, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Aircraft, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Aircraft, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		ri := strings.ToLower(out[i].Registration)
		rj := strings.ToLower(out[j].Registration)
		if ri == rj {
			return out[i].ID < out[j].ID
		}
		return ri < rj
	})
	return out, nil
}
