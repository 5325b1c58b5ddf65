// Package api is the HTTP surface of the server: the feedback gateway,
// the module catalog, per-profile progress, printable documents and
// the activity logs.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storylab/storylab/internal/pdf"
	"github.com/storylab/storylab/internal/progress"
	"github.com/storylab/storylab/internal/session"
	"github.com/storylab/storylab/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

// profileHeader names the profile a request operates on. Absent means
// the default local profile.
const profileHeader = "X-Profile-ID"

// Coach is the feedback surface the API needs. Implemented by
// *coach.Client.
type Coach interface {
	Feedback(ctx context.Context, seedPrompt, userText, contextLabel string) (string, error)
}

// Deps wires the handler. Store may be nil in tests that don't care
// about activity logging; everything else is required.
type Deps struct {
	Coach     Coach
	Tracker   *progress.Tracker
	Generator *pdf.Generator
	Store     *storage.Store
}

// NewHandler builds the router for the full HTTP API.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/feedback", handleFeedback(deps))
		r.Get("/modules", handleListModules())
		r.Get("/modules/{id}", handleGetModule())
		r.Route("/modules/{id}/progress", func(r chi.Router) {
			r.Get("/", handleGetProgress(deps))
			r.Post("/", handleMarkStep(deps))
			r.Delete("/", handleClearProgress(deps))
		})
		r.Get("/modules/{id}/pdf/{variant}", handleDownloadPDF(deps))
		r.Get("/exchanges", handleListExchanges(deps))
		r.Get("/achievements", handleListAchievements(deps))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// requestSession resolves the profile a request acts for.
func requestSession(r *http.Request) session.Session {
	if id := r.Header.Get(profileHeader); id != "" {
		return session.Session{ProfileID: id}
	}
	return session.Local()
}

func queryLimit(r *http.Request, def int) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// httpError writes the flat {"error": "..."} envelope the lesson UI
// renders verbatim.
func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	writeJSON(w, code, map[string]string{"error": fmt.Sprintf(format, args...)})
}
