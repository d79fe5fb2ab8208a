package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skyline-aviation/crew-staffing-api/internal/app/staffing"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

const maxBodyBytes = 1 << 20

// Server implements the HTTP handlers on top of the staffing service.
type Server struct {
	svc *staffing.Service
	log *zap.Logger
}

func NewServer(svc *staffing.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}

func (s *Server) ListAircraft(w http.ResponseWriter, r *http.Request) {
	as, err := s.svc.ListAircraft(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	out := make([]Aircraft, 0, len(as))
	for _, a := range as {
		out = append(out, aircraftFromDomain(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"aircraft": out})
}

func (s *Server) GetAircraft(w http.ResponseWriter, r *http.Request) {
	id := domain.AircraftID(chi.URLParam(r, "aircraftId"))
	a, err := s.svc.GetAircraft(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"aircraft": aircraftFromDomain(a)})
}

func (s *Server) ListCrew(w http.ResponseWriter, r *http.Request) {
	includeInactive, ok := boolQuery(w, r, "includeInactive")
	if !ok {
		return
	}
	cs, err := s.svc.ListCrew(r.Context(), includeInactive)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	out := make([]CrewMember, 0, len(cs))
	for _, c := range cs {
		out = append(out, crewMemberFromDomain(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"crewMembers": out})
}

func (s *Server) ListCrewQualifications(w http.ResponseWriter, r *http.Request) {
	id := domain.CrewMemberID(chi.URLParam(r, "crewMemberId"))
	qs, err := s.svc.ListQualifications(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"qualifications": qualificationsFromDomain(qs)})
}

func (s *Server) CrewEligibility(w http.ResponseWriter, r *http.Request) {
	availableOnly, ok := boolQuery(w, r, "availableOnly")
	if !ok {
		return
	}
	in := staffing.EvaluateCrewInput{AvailableOnly: availableOnly}
	if raw := strings.TrimSpace(r.URL.Query().Get("aircraftId")); raw != "" {
		id := domain.AircraftID(raw)
		in.AircraftID = &id
	}

	ev, err := s.svc.EvaluateCrew(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationFromApp(ev))
}

func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeValidationError(w, r, "invalid JSON body", map[string]any{"body": err.Error()})
		return
	}

	ev, err := s.svc.Evaluate(evaluateInputFromRequest(req))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationFromApp(ev))
}

// boolQuery parses an optional boolean query parameter. On a malformed value it writes a
// 422 and returns ok=false.
func boolQuery(w http.ResponseWriter, r *http.Request, name string) (value bool, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		writeValidationError(w, r, "invalid query parameter", map[string]any{name: "must be a boolean"})
		return false, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
