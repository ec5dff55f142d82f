package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pressroom-erp/pressroom/internal/platform/httpx"
	"github.com/pressroom-erp/pressroom/internal/reports"
)

const dateLayout = "2006-01-02"

// Handler serves the report catalog and export downloads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MountRoutes registers the report endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Catalog)
	r.Get("/{id}/export", h.Export)
}

// Catalog lists every report kind with its supported formats and filters.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports.Registry(),
		"formats": reports.Formats(),
	})
}

// Export streams one generated report as an attachment. Notices collected
// while building the report travel in the X-Report-Notices header so the
// download body stays a clean file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	kindID := chi.URLParam(r, "id")
	format := reports.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = reports.FormatPDF
	}

	opts, err := parseOptions(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Parameters", err.Error())
		return
	}

	result, err := h.service.Export(r.Context(), kindID, format, opts)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrUnknownReport):
			httpx.Problem(w, http.StatusNotFound, "Unknown Report", err.Error())
		case errors.Is(err, reports.ErrUnknownFormat):
			httpx.Problem(w, http.StatusBadRequest, "Unknown Format", err.Error())
		default:
			httpx.RespondError(w, err)
		}
		return
	}

	if len(result.Notices) > 0 {
		if encoded, err := json.Marshal(result.Notices); err == nil {
			w.Header().Set("X-Report-Notices", string(encoded))
		}
	}
	w.Header().Set("Content-Type", result.File.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.File.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.File.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.File.Data)
}

func parseOptions(r *http.Request) (reports.Options, error) {
	q := r.URL.Query()
	opts := reports.Options{Filters: map[string]string{}}

	if from := q.Get("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return opts, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", from)
		}
		opts.Start = t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return opts, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", to)
		}
		opts.End = t
	}
	if !opts.Start.IsZero() && !opts.End.IsZero() && opts.End.Before(opts.Start) {
		return opts, fmt.Errorf("to date precedes from date")
	}

	for _, name := range filterNames() {
		if v := q.Get(name); v != "" {
			opts.Filters[name] = v
		}
	}
	return opts, nil
}

// filterNames collects every filter any report kind declares. Unknown report
// kinds simply ignore filters they do not honor.
func filterNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, d := range reports.Registry() {
		for _, f := range d.Filters {
			if !seen[f] {
				seen[f] = true
				names = append(names, f)
			}
		}
	}
	return names
}
