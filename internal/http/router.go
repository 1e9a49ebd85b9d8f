package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-draft-service/internal/http/handlers"
)

// RouteOption adds optional routes to the router.
type RouteOption func(*nethttp.ServeMux)

// WithAdmin mounts the token-guarded admin endpoints.
func WithAdmin(admin *handlers.AdminHandler) RouteOption {
	return func(mux *nethttp.ServeMux) {
		if admin != nil {
			mux.HandleFunc("/admin/sweep", admin.Sweep)
		}
	}
}

// WithMount serves h at path, e.g. the MCP endpoint.
func WithMount(path string, h nethttp.Handler) RouteOption {
	return func(mux *nethttp.ServeMux) {
		if path != "" && h != nil {
			mux.Handle(path, h)
		}
	}
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, opts ...RouteOption) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/{id}", handler.PlayerByID)

	mux.HandleFunc("/drafts", handler.Drafts)
	mux.HandleFunc("/drafts/{id}", handler.GetDraft)
	mux.HandleFunc("/drafts/{id}/picks", handler.Pick)
	mux.HandleFunc("/drafts/{id}/auto", handler.Auto)
	mux.HandleFunc("/drafts/{id}/needs", handler.DraftNeeds)
	mux.HandleFunc("/drafts/{id}/results", handler.DraftResults)

	mux.HandleFunc("/evaluate", handler.Evaluate)
	mux.HandleFunc("/needs", handler.Needs)
	mux.HandleFunc("/feedback", handler.Feedback)

	for _, opt := range opts {
		opt(mux)
	}
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
