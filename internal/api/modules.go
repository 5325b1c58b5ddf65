package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storylab/storylab/internal/catalog"
)

func handleListModules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.List())
	}
}

func handleGetModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		m, err := catalog.Get(id)
		if errors.Is(err, catalog.ErrNotFound) {
			httpError(w, http.StatusNotFound, "module not found: %s", id)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "loading module: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}
