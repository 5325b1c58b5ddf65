package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/pdf"
	"github.com/storylab/storylab/internal/storage"
)

const msgPDFFailed = "Sorry, there was an error generating the PDF. Please try again!"

func handleDownloadPDF(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID := chi.URLParam(r, "id")
		variant, err := pdf.ParseVariant(chi.URLParam(r, "variant"))
		if err != nil {
			httpError(w, http.StatusNotFound, "%v", err)
			return
		}

		summary, err := catalog.Describe(moduleID)
		if errors.Is(err, catalog.ErrNotFound) {
			httpError(w, http.StatusNotFound, "module not found: %s", moduleID)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "loading module: %v", err)
			return
		}

		sess := requestSession(r)

		// The certificate is earned, not printed on demand.
		if variant == pdf.VariantCertificate {
			done, err := deps.Tracker.IsModuleComplete(sess, moduleID, summary.StepCount)
			if err != nil {
				httpError(w, http.StatusInternalServerError, "loading progress: %v", err)
				return
			}
			if !done {
				httpError(w, http.StatusConflict, "Complete the %s module to unlock the certificate", summary.Title)
				return
			}
		}

		doc, err := deps.Generator.Render(moduleID, summary.Title, variant)
		if errors.Is(err, pdf.ErrContentNotFound) {
			httpError(w, http.StatusNotFound, "no printable content for module: %s", moduleID)
			return
		}
		if err != nil {
			slog.Error("pdf generation failed", "module", moduleID, "variant", variant, "error", err)
			httpError(w, http.StatusInternalServerError, "%s", msgPDFFailed)
			return
		}

		if deps.Store != nil {
			d := storage.Download{
				ID:        uuid.New().String(),
				ProfileID: sess.Profile(),
				ModuleID:  moduleID,
				Variant:   string(variant),
				CreatedAt: time.Now().UTC(),
			}
			if err := deps.Store.SaveDownload(d); err != nil {
				slog.Warn("failed to record download", "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", pdf.Filename(summary.Title, variant)))
		w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
		w.Write(doc)
	}
}
