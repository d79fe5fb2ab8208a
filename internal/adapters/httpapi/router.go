package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterOptions struct {
	// Logger receives one entry per request. Nil disables request logging.
	Logger *zap.Logger
}

// NewRouter constructs the API HTTP router.
func NewRouter(api *Server) http.Handler {
	return NewRouterWithOptions(api, RouterOptions{})
}

func NewRouterWithOptions(api *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.Logger != nil {
		r.Use(RequestLogger(opts.Logger))
	}
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	// Health endpoint is used for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/aircraft", func(r chi.Router) {
		r.Get("/", api.ListAircraft)
		r.Get("/{aircraftId}", api.GetAircraft)
	})
	r.Route("/crew", func(r chi.Router) {
		r.Get("/", api.ListCrew)
		r.Get("/eligibility", api.CrewEligibility)
		r.Get("/{crewMemberId}/qualifications", api.ListCrewQualifications)
	})
	r.Post("/eligibility/evaluate", api.Evaluate)

	return r
}
