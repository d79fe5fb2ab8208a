package crewrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
)

const selectCrew = `
	SELECT
		external_id,
		name,
		phone,
		address,
		employee_code,
		position,
		status,
		role
	FROM crew_members
`

// Repo is a Postgres implementation of crewrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, c domain.CrewMember) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(c.ID))
	if err != nil {
		return fmt.Errorf("invalid crew member id: %w", err)
	}
	c = c.Normalized()
	_, err = r.pool.Exec(ctx, `
		INSERT INTO crew_members (
			external_id,
			name,
			phone,
			address,
			employee_code,
			position,
			status,
			role
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		id,
		c.Name,
		c.Phone,
		c.Address,
		c.EmployeeCode,
		string(c.Position),
		string(c.Status),
		string(c.Role),
	)
	return mapWriteError(err)
}

func (r *Repo) Update(ctx context.Context, c domain.CrewMember) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(c.ID))
	if err != nil {
		return crewrepo.ErrNotFound
	}
	c = c.Normalized()
	ct, err := r.pool.Exec(ctx, `
		UPDATE crew_members
		SET name = $2,
		    phone = $3,
		    address = $4,
		    employee_code = $5,
		    position = $6,
		    status = $7,
		    role = $8,
		    updated_at = now()
		WHERE external_id = $1
	`,
		id,
		c.Name,
		c.Phone,
		c.Address,
		c.EmployeeCode,
		string(c.Position),
		string(c.Status),
		string(c.Role),
	)
	if err != nil {
		return mapWriteError(err)
	}
	if ct.RowsAffected() == 0 {
		return crewrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.CrewMemberID) (domain.CrewMember, error) {
	if r.pool == nil {
		return domain.CrewMember{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.CrewMember{}, crewrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, selectCrew+` WHERE external_id = $1`, uid)
	return scanCrewMember(row)
}

func (r *Repo) List(ctx context.Context, includeInactive bool) ([]domain.CrewMember, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	if !includeInactive {
		where = "WHERE lower(btrim(status)) = 'active'"
	}
	rows, err := r.pool.Query(ctx, selectCrew+where+`
		ORDER BY lower(name) ASC, external_id::text ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CrewMember, 0)
	for rows.Next() {
		c, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
		switch pe.ConstraintName {
		case "crew_members_external_id_unique":
			return crewrepo.ErrAlreadyExists
		case "crew_members_employee_code_unique":
			return crewrepo.ErrEmployeeCodeInUse
		}
	}
	return err
}

func scanCrewMember(row interface {
	Scan(dest ...any) error
}) (domain.CrewMember, error) {
	var (
		externalID   uuid.UUID
		name         string
		phone        *string
		address      *string
		employeeCode *string
		position     string
		status       string
		role         string
	)
	if err := row.Scan(&externalID, &name, &phone, &address, &employeeCode, &position, &status, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CrewMember{}, crewrepo.ErrNotFound
		}
		return domain.CrewMember{}, err
	}
	// Rows written by other tools may carry display titles ("Captain") or mixed case.
	return domain.CrewMember{
		ID:           domain.CrewMemberID(externalID.String()),
		Name:         name,
		Phone:        phone,
		Address:      address,
		EmployeeCode: employeeCode,
		Position:     domain.Position(position),
		Status:       domain.AccountStatus(status),
		Role:         domain.Role(role),
	}.Normalized(), nil
}
