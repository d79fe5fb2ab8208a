package httpapi

import (
	"strings"
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/skyline-aviation/crew-staffing-api/internal/app/staffing"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain/eligibility"
)

type Aircraft struct {
	AircraftId   string `json:"aircraftId"`
	Registration string `json:"registration"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

type CrewMember struct {
	CrewMemberId string                    `json:"crewMemberId"`
	Name         string                    `json:"name"`
	Phone        nullable.Nullable[string] `json:"phone,omitempty"`
	Address      nullable.Nullable[string] `json:"address,omitempty"`
	EmployeeCode nullable.Nullable[string] `json:"employeeCode,omitempty"`
	Position     string                    `json:"position"`
	Status       string                    `json:"status"`
	Role         string                    `json:"role"`
}

type Qualification struct {
	QualificationId string                                `json:"qualificationId"`
	CrewMemberId    string                                `json:"crewMemberId"`
	Kind            string                                `json:"kind"`
	Code            nullable.Nullable[string]             `json:"code,omitempty"`
	AircraftType    nullable.Nullable[string]             `json:"aircraftType,omitempty"`
	Level           nullable.Nullable[string]             `json:"level,omitempty"`
	Valid           bool                                  `json:"valid"`
	ExpiryDate      nullable.Nullable[openapi_types.Date] `json:"expiryDate,omitempty"`
}

type BadgeStatus struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type QualificationSummary struct {
	Valid          []Qualification `json:"valid"`
	Expired        []Qualification `json:"expired"`
	Invalid        []Qualification `json:"invalid"`
	HasTypeRating  bool            `json:"hasTypeRating"`
	HasCabinSafety bool            `json:"hasCabinSafety"`
}

type ProcessedCrewMember struct {
	CrewMember       CrewMember           `json:"crewMember"`
	RoleLabel        string               `json:"roleLabel"`
	DisplayPosition  string               `json:"displayPosition"`
	Status           BadgeStatus          `json:"status"`
	MissingDocuments []string             `json:"missingDocuments"`
	Qualified        bool                 `json:"qualified"`
	Qualifications   QualificationSummary `json:"qualifications"`
}

type Tally struct {
	Available  int `json:"available"`
	Incomplete int `json:"incomplete"`
	Missing    int `json:"missing"`
	Inactive   int `json:"inactive"`
	Total      int `json:"total"`
}

type EvaluationResponse struct {
	EvaluatedAt time.Time                   `json:"evaluatedAt"`
	Aircraft    nullable.Nullable[Aircraft] `json:"aircraft,omitempty"`
	Crew        []ProcessedCrewMember       `json:"crew"`
	Tally       Tally                       `json:"tally"`
}

// EvaluateRequest is the body of POST /eligibility/evaluate.
type EvaluateRequest struct {
	Aircraft       nullable.Nullable[Aircraft]  `json:"aircraft,omitempty"`
	CrewMembers    []CrewMember                 `json:"crewMembers"`
	Qualifications []Qualification              `json:"qualifications"`
	Now            nullable.Nullable[time.Time] `json:"now,omitempty"`
}

func aircraftFromDomain(a domain.Aircraft) Aircraft {
	return Aircraft{
		AircraftId:   string(a.ID),
		Registration: a.Registration,
		Type:         a.Type,
		Status:       string(a.Status),
	}
}

func crewMemberFromDomain(c domain.CrewMember) CrewMember {
	return CrewMember{
		CrewMemberId: string(c.ID),
		Name:         c.Name,
		Phone:        nullableString(c.Phone),
		Address:      nullableString(c.Address),
		EmployeeCode: nullableString(c.EmployeeCode),
		Position:     string(c.Position),
		Status:       string(c.Status),
		Role:         string(c.Role),
	}
}

func qualificationFromDomain(q domain.Qualification) Qualification {
	return Qualification{
		QualificationId: string(q.ID),
		CrewMemberId:    string(q.CrewMemberID),
		Kind:            string(q.Kind),
		Code:            nullableString(q.Code),
		AircraftType:    nullableString(q.AircraftType),
		Level:           nullableString(q.Level),
		Valid:           q.Valid,
		ExpiryDate:      nullableDate(q.ExpiryDate),
	}
}

func qualificationsFromDomain(qs []domain.Qualification) []Qualification {
	out := make([]Qualification, 0, len(qs))
	for _, q := range qs {
		out = append(out, qualificationFromDomain(q))
	}
	return out
}

func evaluationFromApp(ev staffing.Evaluation) EvaluationResponse {
	out := EvaluationResponse{
		EvaluatedAt: ev.EvaluatedAt.UTC(),
		Crew:        make([]ProcessedCrewMember, 0, len(ev.Crew)),
		Tally: Tally{
			Available:  ev.Tally.Available,
			Incomplete: ev.Tally.Incomplete,
			Missing:    ev.Tally.Missing,
			Inactive:   ev.Tally.Inactive,
			Total:      ev.Tally.Total(),
		},
	}
	if ev.Aircraft != nil {
		out.Aircraft = nullable.NewNullableWithValue(aircraftFromDomain(*ev.Aircraft))
	}
	for _, p := range ev.Crew {
		out.Crew = append(out.Crew, processedFromDomain(p))
	}
	return out
}

func processedFromDomain(p eligibility.ProcessedCrewMember) ProcessedCrewMember {
	missing := p.MissingDocuments
	if missing == nil {
		missing = []string{}
	}
	return ProcessedCrewMember{
		CrewMember:       crewMemberFromDomain(p.CrewMember),
		RoleLabel:        p.RoleLabel,
		DisplayPosition:  p.DisplayPosition,
		Status:           BadgeStatus{Text: p.Status.Text, Color: string(p.Status.Color)},
		MissingDocuments: missing,
		Qualified:        p.Qualified,
		Qualifications: QualificationSummary{
			Valid:          qualificationsFromDomain(p.Qualifications.Valid),
			Expired:        qualificationsFromDomain(p.Qualifications.Expired),
			Invalid:        qualificationsFromDomain(p.Qualifications.Invalid),
			HasTypeRating:  p.Qualifications.HasTypeRating,
			HasCabinSafety: p.Qualifications.HasCabinSafety,
		},
	}
}

func evaluateInputFromRequest(req EvaluateRequest) staffing.EvaluateInput {
	in := staffing.EvaluateInput{
		CrewMembers:    make([]domain.CrewMember, 0, len(req.CrewMembers)),
		Qualifications: make([]domain.Qualification, 0, len(req.Qualifications)),
	}
	if a, ok := specified(req.Aircraft); ok {
		in.Aircraft = &domain.Aircraft{
			ID:           domain.AircraftID(a.AircraftId),
			Registration: a.Registration,
			Type:         a.Type,
			Status:       domain.AircraftStatus(strings.ToUpper(strings.TrimSpace(a.Status))),
		}
	}
	for _, c := range req.CrewMembers {
		in.CrewMembers = append(in.CrewMembers, domain.CrewMember{
			ID:           domain.CrewMemberID(c.CrewMemberId),
			Name:         domain.NormalizeHumanName(c.Name),
			Phone:        stringPtr(c.Phone),
			Address:      stringPtr(c.Address),
			EmployeeCode: stringPtr(c.EmployeeCode),
			Position:     domain.Position(c.Position),
			Status:       domain.AccountStatus(c.Status),
			Role:         domain.Role(c.Role),
		}.Normalized())
	}
	for _, q := range req.Qualifications {
		dq := domain.Qualification{
			ID:           domain.QualificationID(q.QualificationId),
			CrewMemberID: domain.CrewMemberID(q.CrewMemberId),
			Kind:         domain.QualificationKind(q.Kind),
			Code:         stringPtr(q.Code),
			AircraftType: stringPtr(q.AircraftType),
			Level:        stringPtr(q.Level),
			Valid:        q.Valid,
		}
		if d, ok := specified(q.ExpiryDate); ok {
			t := d.Time
			dq.ExpiryDate = &t
		}
		in.Qualifications = append(in.Qualifications, dq.Normalized())
	}
	if now, ok := specified(req.Now); ok {
		in.Now = &now
	}
	return in
}

func specified[T any](n nullable.Nullable[T]) (T, bool) {
	if !n.IsSpecified() || n.IsNull() {
		var zero T
		return zero, false
	}
	v, err := n.Get()
	if err != nil {
		return v, false
	}
	return v, true
}

func stringPtr(n nullable.Nullable[string]) *string {
	v, ok := specified(n)
	if !ok {
		return nil
	}
	return &v
}

func nullableString(p *string) nullable.Nullable[string] {
	var out nullable.Nullable[string]
	if p != nil {
		out.Set(*p)
	}
	return out
}

func nullableDate(p *time.Time) nullable.Nullable[openapi_types.Date] {
	var out nullable.Nullable[openapi_types.Date]
	if p != nil {
		out.Set(openapi_types.Date{Time: p.UTC()})
	}
	return out
}
