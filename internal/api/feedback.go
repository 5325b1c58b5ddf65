package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/coach"
	"github.com/storylab/storylab/internal/storage"
)

// These two messages reach the user unchanged, so they explain what to
// do rather than what broke internally.
const (
	msgMissingCredential = "OpenAI API key not configured. Set STORYLAB_OPENAI_API_KEY or store it with 'storylab config set-secret openai.api_key'."
	msgFeedbackFailed    = "Failed to get AI response. Please try again."
)

type feedbackRequest struct {
	Prompt    string `json:"prompt"`
	UserInput string `json:"userInput"`
	Context   string `json:"context"`
}

type feedbackResponse struct {
	Response string `json:"response"`
}

func handleFeedback(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req feedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		if strings.TrimSpace(req.UserInput) == "" || strings.TrimSpace(req.Prompt) == "" {
			httpError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		reply, err := deps.Coach.Feedback(r.Context(), req.Prompt, req.UserInput, req.Context)
		switch {
		case errors.Is(err, coach.ErrInvalidRequest):
			httpError(w, http.StatusBadRequest, "Missing required fields")
			return
		case errors.Is(err, coach.ErrMissingCredential):
			httpError(w, http.StatusInternalServerError, "%s", msgMissingCredential)
			return
		case err != nil:
			slog.Error("feedback request failed", "error", err)
			httpError(w, http.StatusInternalServerError, "%s", msgFeedbackFailed)
			return
		}

		if deps.Store != nil {
			exchange := storage.Exchange{
				ID:           uuid.New().String(),
				ProfileID:    requestSession(r).Profile(),
				ContextLabel: req.Context,
				UserText:     req.UserInput,
				Reply:        reply,
				CreatedAt:    time.Now().UTC(),
			}
			if err := deps.Store.SaveExchange(exchange); err != nil {
				// The user already has their reply; logging must not
				// turn a good exchange into an error.
				slog.Warn("failed to record exchange", "error", err)
			}
		}

		writeJSON(w, http.StatusOK, feedbackResponse{Response: reply})
	}
}

func handleListExchanges(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			writeJSON(w, http.StatusOK, []storage.Exchange{})
			return
		}
		exchanges, err := deps.Store.ListExchanges(requestSession(r).Profile(), queryLimit(r, 20))
		if err != nil {
			httpError(w, http.StatusInternalServerError, "listing exchanges: %v", err)
			return
		}

		// Exchanges record the caller's context label, not a module id.
		// ?module= matches the "Module: <title>" labels the lesson UI and
		// walker produce.
		if moduleID := r.URL.Query().Get("module"); moduleID != "" {
			summary, err := catalog.Describe(moduleID)
			if errors.Is(err, catalog.ErrNotFound) {
				httpError(w, http.StatusNotFound, "module not found: %s", moduleID)
				return
			}
			if err != nil {
				httpError(w, http.StatusInternalServerError, "loading module: %v", err)
				return
			}
			filtered := exchanges[:0]
			for _, e := range exchanges {
				if strings.Contains(e.ContextLabel, "Module: "+summary.Title) {
					filtered = append(filtered, e)
				}
			}
			exchanges = filtered
		}

		if exchanges == nil {
			exchanges = []storage.Exchange{}
		}
		writeJSON(w, http.StatusOK, exchanges)
	}
}
