package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/session"
	"github.com/storylab/storylab/internal/storage"
)

type progressResponse struct {
	ModuleID         string   `json:"moduleId"`
	CompletedStepIDs []string `json:"completedStepIds"`
	TotalSteps       int      `json:"totalSteps"`
	Complete         bool     `json:"complete"`
}

func progressFor(deps Deps, sess session.Session, m catalog.Module) (progressResponse, error) {
	set, err := deps.Tracker.Load(sess, m.ID)
	if err != nil {
		return progressResponse{}, err
	}

	// Report ids in lesson order; steps not in the catalog (stale data
	// from edited content) sort last.
	ids := make([]string, 0, len(set))
	order := make(map[string]int, len(m.Steps))
	for i, st := range m.Steps {
		order[st.ID] = i
	}
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		oi, iok := order[ids[i]]
		oj, jok := order[ids[j]]
		if iok != jok {
			return iok
		}
		if !iok {
			return ids[i] < ids[j]
		}
		return oi < oj
	})

	return progressResponse{
		ModuleID:         m.ID,
		CompletedStepIDs: ids,
		TotalSteps:       len(m.Steps),
		Complete:         len(set) == len(m.Steps) && len(m.Steps) > 0,
	}, nil
}

// moduleFromRequest resolves the {id} route parameter, writing the 404
// envelope itself when the module is unknown or unauthored.
func moduleFromRequest(w http.ResponseWriter, r *http.Request) (catalog.Module, bool) {
	id := chi.URLParam(r, "id")
	m, err := catalog.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		httpError(w, http.StatusNotFound, "module not found: %s", id)
		return catalog.Module{}, false
	}
	if err != nil {
		httpError(w, http.StatusInternalServerError, "loading module: %v", err)
		return catalog.Module{}, false
	}
	return m, true
}

func handleGetProgress(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := moduleFromRequest(w, r)
		if !ok {
			return
		}
		resp, err := progressFor(deps, requestSession(r), m)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "loading progress: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type markStepRequest struct {
	StepID string `json:"stepId"`
}

func handleMarkStep(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := moduleFromRequest(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req markStepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}

		known := false
		for _, st := range m.Steps {
			if st.ID == req.StepID {
				known = true
				break
			}
		}
		if !known {
			httpError(w, http.StatusBadRequest, "unknown step %q for module %s", req.StepID, m.ID)
			return
		}

		sess := requestSession(r)
		if _, err := deps.Tracker.MarkComplete(sess, m.ID, req.StepID); err != nil {
			httpError(w, http.StatusInternalServerError, "saving progress: %v", err)
			return
		}

		resp, err := progressFor(deps, sess, m)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "loading progress: %v", err)
			return
		}

		if resp.Complete && deps.Store != nil {
			a := storage.Achievement{
				ID:        uuid.New().String(),
				ProfileID: sess.Profile(),
				Kind:      storage.AchievementModuleComplete,
				ModuleID:  m.ID,
				EarnedAt:  time.Now().UTC(),
			}
			if awarded, err := deps.Store.AwardAchievement(a); err != nil {
				slog.Warn("failed to award achievement", "module", m.ID, "error", err)
			} else if awarded {
				slog.Info("achievement earned", "profile", sess.Profile(), "module", m.ID)
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleClearProgress(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := moduleFromRequest(w, r)
		if !ok {
			return
		}
		if err := deps.Tracker.Clear(requestSession(r), m.ID); err != nil {
			httpError(w, http.StatusInternalServerError, "clearing progress: %v", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListAchievements(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			writeJSON(w, http.StatusOK, []storage.Achievement{})
			return
		}
		achievements, err := deps.Store.ListAchievements(requestSession(r).Profile())
		if err != nil {
			httpError(w, http.StatusInternalServerError, "listing achievements: %v", err)
			return
		}
		if achievements == nil {
			achievements = []storage.Achievement{}
		}
		writeJSON(w, http.StatusOK, achievements)
	}
}
