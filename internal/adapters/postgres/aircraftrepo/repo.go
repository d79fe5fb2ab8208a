package aircraftrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
)

// Repo is a Postgres implementation of aircraftrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, a domain.Aircraft) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(a.ID))
	if err != nil {
		return fmt.Errorf("invalid aircraft id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO aircraft (external_id, registration, aircraft_type, status)
		VALUES ($1, $2, $3, $4)
	`, id, a.Registration, a.Type, string(a.Status))
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			// Both the external id and the registration index map to the same sentinel.
			return aircraftrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Save(ctx context.Context, a domain.Aircraft) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(a.ID))
	if err != nil {
		return aircraftrepo.ErrNotFound
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE aircraft
		SET registration = $2,
		    aircraft_type = $3,
		    status = $4,
		    updated_at = now()
		WHERE external_id = $1
	`, id, a.Registration, a.Type, string(a.Status))
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return aircraftrepo.ErrAlreadyExists
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return aircraftrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.AircraftID) (domain.Aircraft, error) {
	if r.pool == nil {
		return domain.Aircraft{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Aircraft{}, aircraftrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT external_id, registration, aircraft_type, status
		FROM aircraft
		WHERE external_id = $1
	`, uid)
	return scanAircraft(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.Aircraft, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT external_id, registration, aircraft_type, status
		FROM aircraft
		ORDER BY lower(registration) ASC, external_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Aircraft, 0)
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanAircraft(row interface {
	Scan(dest ...any) error
}) (domain.Aircraft, error) {
	var (
		externalID   uuid.UUID
		registration string
		aircraftType string
		status       string
	)
	if err := row.Scan(&externalID, &registration, &aircraftType, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Aircraft{}, aircraftrepo.ErrNotFound
		}
		return domain.Aircraft{}, err
	}
	return domain.Aircraft{
		ID:           domain.AircraftID(externalID.String()),
		Registration: registration,
		Type:         aircraftType,
		Status:       domain.AircraftStatus(status),
	}, nil
}
