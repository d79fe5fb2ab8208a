package staffing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain/eligibility"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/clock"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

type Service struct {
	aircraft       aircraftrepo.Repository
	crew           crewrepo.Repository
	qualifications qualificationrepo.Repository

	clock clock.Clock
	log   *zap.Logger
}

func NewService(
	aircraftRepo aircraftrepo.Repository,
	crewRepo crewrepo.Repository,
	qualificationsRepo qualificationrepo.Repository,
	clk clock.Clock,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		aircraft:       aircraftRepo,
		crew:           crewRepo,
		qualifications: qualificationsRepo,
		clock:          clk,
		log:            log,
	}
}

func (s *Service) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	return s.aircraft.List(ctx)
}

func (s *Service) GetAircraft(ctx context.Context, id domain.AircraftID) (domain.Aircraft, error) {
	a, err := s.aircraft.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, aircraftrepo.ErrNotFound) {
			return domain.Aircraft{}, aircraftNotFound()
		}
		return domain.Aircraft{}, fmt.Errorf("get aircraft: %w", err)
	}
	return a, nil
}

func (s *Service) ListCrew(ctx context.Context, includeInactive bool) ([]domain.CrewMember, error) {
	return s.crew.List(ctx, includeInactive)
}

// ListQualifications returns one crew member's qualifications. Unknown members are a 404
// rather than an empty list.
func (s *Service) ListQualifications(ctx context.Context, id domain.CrewMemberID) ([]domain.Qualification, error) {
	if _, err := s.crew.GetByID(ctx, id); err != nil {
		if errors.Is(err, crewrepo.ErrNotFound) {
			return nil, &Error{Status: 404, Code: "CREW_MEMBER_NOT_FOUND", Message: "crew member not found"}
		}
		return nil, fmt.Errorf("get crew member: %w", err)
	}
	return s.qualifications.ListByCrewMember(ctx, id)
}

// EvaluateCrew runs the eligibility pipeline over the stored roster. The three feeds are
// read concurrently and the clock is sampled once, after all of them have arrived.
func (s *Service) EvaluateCrew(ctx context.Context, in EvaluateCrewInput) (Evaluation, error) {
	var (
		ac    *domain.Aircraft
		crew  []domain.CrewMember
		quals []domain.Qualification
	)

	g, gctx := errgroup.WithContext(ctx)
	if in.AircraftID != nil {
		id := *in.AircraftID
		g.Go(func() error {
			a, err := s.aircraft.GetByID(gctx, id)
			if err != nil {
				if errors.Is(err, aircraftrepo.ErrNotFound) {
					return aircraftNotFound()
				}
				return fmt.Errorf("load aircraft: %w", err)
			}
			ac = &a
			return nil
		})
	}
	g.Go(func() error {
		cs, err := s.crew.List(gctx, true)
		if err != nil {
			return fmt.Errorf("load crew: %w", err)
		}
		crew = cs
		return nil
	})
	g.Go(func() error {
		qs, err := s.qualifications.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("load qualifications: %w", err)
		}
		quals = qs
		return nil
	})
	if err := g.Wait(); err != nil {
		return Evaluation{}, err
	}

	ev := s.run(ac, crew, quals, s.clock.Now())
	if in.AvailableOnly {
		ev.Crew = eligibility.Available(ev.Crew)
	}
	return ev, nil
}

// Evaluate runs the pipeline over a caller-supplied snapshot without touching storage.
func (s *Service) Evaluate(in EvaluateInput) (Evaluation, error) {
	if err := validateSnapshot(in); err != nil {
		return Evaluation{}, err
	}
	now := s.clock.Now()
	if in.Now != nil {
		now = *in.Now
	}
	return s.run(in.Aircraft, in.CrewMembers, in.Qualifications, now), nil
}

func (s *Service) run(ac *domain.Aircraft, crew []domain.CrewMember, quals []domain.Qualification, now time.Time) Evaluation {
	rows := eligibility.Process(ac, crew, quals, now)
	tally := eligibility.CountByColor(rows)

	fields := []zap.Field{
		zap.Int("crew", len(rows)),
		zap.Int("available", tally.Available),
		zap.Time("now", now),
	}
	if ac != nil {
		fields = append(fields, zap.String("aircraftId", string(ac.ID)))
	}
	s.log.Debug("evaluated crew eligibility", fields...)

	return Evaluation{EvaluatedAt: now, Aircraft: ac, Crew: rows, Tally: tally}
}

func validateSnapshot(in EvaluateInput) error {
	details := map[string]any{}
	for i, c := range in.CrewMembers {
		if strings.TrimSpace(string(c.ID)) == "" {
			details[fmt.Sprintf("crewMembers[%d].id", i)] = "must be non-empty"
		}
	}
	for i, q := range in.Qualifications {
		if strings.TrimSpace(string(q.CrewMemberID)) == "" {
			details[fmt.Sprintf("qualifications[%d].crewMemberId", i)] = "must be non-empty"
		}
		if !q.Kind.Valid() {
			details[fmt.Sprintf("qualifications[%d].kind", i)] = "unknown qualification kind"
		}
	}
	if len(details) > 0 {
		return validationError("invalid evaluation snapshot", details)
	}
	return nil
}

func aircraftNotFound() *Error {
	return &Error{Status: 404, Code: "AIRCRAFT_NOT_FOUND", Message: "aircraft not found"}
}
