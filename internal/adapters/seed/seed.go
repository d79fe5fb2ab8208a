// Package seed loads aircraft, crew and qualification records from a JSON document into
// the feed repositories. It lets a memory-backed process start with data, and can also
// prime a postgres store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

// Document is the seed file layout.
type Document struct {
	Aircraft       []Aircraft      `json:"aircraft"`
	CrewMembers    []CrewMember    `json:"crewMembers"`
	Qualifications []Qualification `json:"qualifications"`
}

type Aircraft struct {
	ID           string `json:"id"`
	Registration string `json:"registration"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

type CrewMember struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	EmployeeCode *string `json:"employeeCode"`
	Position     string  `json:"position"`
	Status       string  `json:"status"`
	Role         string  `json:"role"`
}

type Qualification struct {
	ID           string              `json:"id"`
	CrewMemberID string              `json:"crewMemberId"`
	Kind         string              `json:"kind"`
	Code         *string             `json:"code"`
	AircraftType *string             `json:"aircraftType"`
	Level        *string             `json:"level"`
	Valid        bool                `json:"valid"`
	ExpiryDate   *openapi_types.Date `json:"expiryDate"`
}

// Stores are the repositories a seed document is written into.
type Stores struct {
	Aircraft       aircraftrepo.Repository
	Crew           crewrepo.Repository
	Qualifications qualificationrepo.Repository
}

// Result counts the records written. Records that already existed are counted as skipped.
type Result struct {
	Aircraft       int
	CrewMembers    int
	Qualifications int
	Skipped        int
}

// LoadFile reads the seed document at path and applies it.
func LoadFile(ctx context.Context, path string, st Stores) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(ctx, f, st)
}

// Load decodes a seed document from r and applies it. Aircraft and crew that already exist
// are left untouched; qualifications use upsert semantics, so loading twice is harmless.
func Load(ctx context.Context, r io.Reader, st Stores) (Result, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Result{}, fmt.Errorf("decode seed: %w", err)
	}
	return Apply(ctx, doc, st)
}

func Apply(ctx context.Context, doc Document, st Stores) (Result, error) {
	var res Result

	for _, a := range doc.Aircraft {
		err := st.Aircraft.Create(ctx, domain.Aircraft{
			ID:           domain.AircraftID(a.ID),
			Registration: a.Registration,
			Type:         domain.NormalizeHumanName(a.Type),
			Status:       domain.AircraftStatus(a.Status),
		})
		switch {
		case err == nil:
			res.Aircraft++
		case errors.Is(err, aircraftrepo.ErrAlreadyExists):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed aircraft %q: %w", a.ID, err)
		}
	}

	for _, c := range doc.CrewMembers {
		err := st.Crew.Create(ctx, domain.CrewMember{
			ID:           domain.CrewMemberID(c.ID),
			Name:         domain.NormalizeHumanName(c.Name),
			Phone:        c.Phone,
			Address:      c.Address,
			EmployeeCode: c.EmployeeCode,
			Position:     domain.Position(c.Position),
			Status:       domain.AccountStatus(c.Status),
			Role:         domain.Role(c.Role),
		}.Normalized())
		switch {
		case err == nil:
			res.CrewMembers++
		case errors.Is(err, crewrepo.ErrAlreadyExists):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed crew member %q: %w", c.ID, err)
		}
	}

	for _, q := range doc.Qualifications {
		dq := domain.Qualification{
			ID:           domain.QualificationID(q.ID),
			CrewMemberID: domain.CrewMemberID(q.CrewMemberID),
			Kind:         domain.QualificationKind(q.Kind),
			Code:         q.Code,
			AircraftType: q.AircraftType,
			Level:        q.Level,
			Valid:        q.Valid,
		}
		if q.ExpiryDate != nil {
			t := q.ExpiryDate.Time
			dq.ExpiryDate = &t
		}
		dq = dq.Normalized()
		if !dq.Kind.Valid() {
			return res, fmt.Errorf("seed qualification %q: unknown kind %q", q.ID, q.Kind)
		}
		if err := st.Qualifications.Upsert(ctx, dq); err != nil {
			return res, fmt.Errorf("seed qualification %q: %w", q.ID, err)
		}
		res.Qualifications++
	}
	return res, nil
}
