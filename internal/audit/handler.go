package audit

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler serves the audit timeline and its CSV export.
type Handler struct {
	logger *slog.Logger
	log    *Log
}

// NewHandler constructs an audit handler.
func NewHandler(logger *slog.Logger, log *Log) *Handler {
	return &Handler{logger: logger, log: log}
}

// MountRoutes registers audit routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleTimeline)
	r.Get("/csv", h.handleExport)
}

func filtersFrom(r *http.Request) Filters {
	filters := Filters{
		Action: Action(r.URL.Query().Get("action")),
		Entity: r.URL.Query().Get("entity"),
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filters.From = t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			// Inclusive day: extend to the last instant of the date.
			filters.To = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return filters
}

func (h *Handler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(h.log.Timeline(filtersFrom(r))); err != nil {
		h.logger.Error("encode audit timeline", slog.Any("error", err))
	}
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-timeline.csv"`)
	if err := h.log.ExportCSV(w, filtersFrom(r)); err != nil {
		h.logger.Error("export audit timeline", slog.Any("error", err))
	}
}
