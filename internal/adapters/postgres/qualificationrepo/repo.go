package qualificationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

const selectQualifications = `
	SELECT
		q.external_id,
		c.external_id,
		q.kind,
		q.code,
		q.aircraft_type,
		q.level,
		q.valid,
		q.expiry_date
	FROM qualifications q
	JOIN crew_members c ON c.id = q.crew_member_id
`

const orderQualifications = `
	ORDER BY c.external_id::text ASC, q.external_id::text ASC
`

// Repo is a Postgres implementation of qualificationrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Upsert(ctx context.Context, q domain.Qualification) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(q.ID))
	if err != nil {
		return fmt.Errorf("invalid qualification id: %w", err)
	}
	owner, err := uuid.Parse(string(q.CrewMemberID))
	if err != nil {
		return qualificationrepo.ErrUnknownCrewMember
	}
	q = q.Normalized()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var ownerPK int64
		if err := tx.QueryRow(ctx, `SELECT id FROM crew_members WHERE external_id = $1`, owner).Scan(&ownerPK); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return qualificationrepo.ErrUnknownCrewMember
			}
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO qualifications (
				external_id,
				crew_member_id,
				kind,
				code,
				aircraft_type,
				level,
				valid,
				expiry_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (external_id) DO UPDATE
			SET crew_member_id = EXCLUDED.crew_member_id,
			    kind = EXCLUDED.kind,
			    code = EXCLUDED.code,
			    aircraft_type = EXCLUDED.aircraft_type,
			    level = EXCLUDED.level,
			    valid = EXCLUDED.valid,
			    expiry_date = EXCLUDED.expiry_date,
			    updated_at = now()
		`,
			id,
			ownerPK,
			string(q.Kind),
			q.Code,
			q.AircraftType,
			q.Level,
			q.Valid,
			toPgDate(q.ExpiryDate),
		)
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.ForeignKeyViolationCode {
				// Owner deleted between the lookup and the write.
				return qualificationrepo.ErrUnknownCrewMember
			}
			return err
		}
		return nil
	})
}

func (r *Repo) Delete(ctx context.Context, id domain.QualificationID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return qualificationrepo.ErrNotFound
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM qualifications WHERE external_id = $1`, uid)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return qualificationrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) ListByCrewMember(ctx context.Context, id domain.CrewMemberID) ([]domain.Qualification, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	owner, err := uuid.Parse(string(id))
	if err != nil {
		return make([]domain.Qualification, 0), nil
	}
	rows, err := r.pool.Query(ctx, selectQualifications+` WHERE c.external_id = $1`+orderQualifications, owner)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Qualification, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, selectQualifications+orderQualifications)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.Qualification, error) {
	defer rows.Close()

	out := make([]domain.Qualification, 0)
	for rows.Next() {
		q, err := scanQualification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanQualification(row interface {
	Scan(dest ...any) error
}) (domain.Qualification, error) {
	var (
		externalID   uuid.UUID
		ownerID      uuid.UUID
		kind         string
		code         *string
		aircraftType *string
		level        *string
		valid        bool
		expiry       pgtype.Date
	)
	if err := row.Scan(&externalID, &ownerID, &kind, &code, &aircraftType, &level, &valid, &expiry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Qualification{}, qualificationrepo.ErrNotFound
		}
		return domain.Qualification{}, err
	}
	return domain.Qualification{
		ID:           domain.QualificationID(externalID.String()),
		CrewMemberID: domain.CrewMemberID(ownerID.String()),
		Kind:         domain.ParseQualificationKind(kind),
		Code:         code,
		AircraftType: aircraftType,
		Level:        level,
		Valid:        valid,
		ExpiryDate:   fromPgDate(expiry),
	}, nil
}

func toPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: domain.DateOnly(*t), Valid: true}
}

func fromPgDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}
