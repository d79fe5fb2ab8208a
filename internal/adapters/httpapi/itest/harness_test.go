package itest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/httpapi"
	memaircraftrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/aircraftrepo"
	memclock "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/clock"
	memcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/crewrepo"
	memqualificationrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/qualificationrepo"
	pgaircraftrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/aircraftrepo"
	pgcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/crewrepo"
	pgqualificationrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/qualificationrepo"
	postgres_testutil "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/testutil"
	"github.com/skyline-aviation/crew-staffing-api/internal/app/staffing"
	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
	aircraftrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
	crewrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	qualificationrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendPostgres backend = "postgres"
)

func backendsFromEnv(t *testing.T) []backend {
	t.Helper()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "", "memory":
		return []backend{backendMemory}
	case "postgres":
		return []backend{backendPostgres}
	case "all":
		return []backend{backendMemory, backendPostgres}
	default:
		t.Fatalf("unknown ITEST_BACKEND value (expected memory|postgres|all)")
		return nil
	}
}

// stores exposes the repositories behind a test server so tests can seed feeds directly.
type stores struct {
	aircraft       aircraftrepoport.Repository
	crew           crewrepoport.Repository
	qualifications qualificationrepoport.Repository
}

type testServer struct {
	baseURL string
	client  *http.Client
	stores  stores
	clock   *memclock.ManualClock
}

func newTestServer(t *testing.T, b backend) *testServer {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	var st stores
	switch b {
	case backendPostgres:
		pool := postgres_testutil.OpenMigratedPool(t)
		st = stores{
			aircraft:       pgaircraftrepo.NewRepo(pool),
			crew:           pgcrewrepo.NewRepo(pool),
			qualifications: pgqualificationrepo.NewRepo(pool),
		}
	case backendMemory:
		crew := memcrewrepo.NewRepo()
		st = stores{
			aircraft:       memaircraftrepo.NewRepo(),
			crew:           crew,
			qualifications: memqualificationrepo.NewRepo(crew),
		}
	default:
		t.Fatalf("unknown backend: %s", b)
	}

	svc := staffing.NewService(st.aircraft, st.crew, st.qualifications, clk, zap.NewNop())
	handler := httpapi.NewRouterWithOptions(httpapi.NewServer(svc, zap.NewNop()), httpapi.RouterOptions{Logger: zap.NewNop()})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
		stores:  st,
		clock:   clk,
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) doJSON(t *testing.T, method string, path string, body any) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, resp.Header
}

func (s *testServer) seedAircraft(t *testing.T, a domain.Aircraft) {
	t.Helper()
	if err := s.stores.aircraft.Create(context.Background(), a); err != nil {
		t.Fatalf("seed aircraft: %v", err)
	}
}

func (s *testServer) seedCrew(t *testing.T, c domain.CrewMember) {
	t.Helper()
	if err := s.stores.crew.Create(context.Background(), c); err != nil {
		t.Fatalf("seed crew member: %v", err)
	}
}

func (s *testServer) seedQualification(t *testing.T, q domain.Qualification) {
	t.Helper()
	if err := s.stores.qualifications.Upsert(context.Background(), q); err != nil {
		t.Fatalf("seed qualification: %v", err)
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

func requireErrorCode(t *testing.T, status int, body []byte, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status=%d want=%d body=%s", status, wantStatus, string(body))
	}
	got := mustUnmarshal[errorResponse](t, body)
	if got.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", got.Error.Code, wantCode, string(body))
	}
}

func requireHeaderPresent(t *testing.T, h http.Header, key string) {
	t.Helper()
	if strings.TrimSpace(h.Get(key)) == "" {
		t.Fatalf("expected header %q to be present", key)
	}
}
