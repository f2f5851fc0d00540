// Package http serves every report as a structured JSON document or a flat
// CSV table. Handlers compute over isolated snapshots; duplicate concurrent
// builds for the same key are collapsed.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/ledgerdesk/ledgerdesk/internal/books/reports"
	"github.com/ledgerdesk/ledgerdesk/internal/company"
	"github.com/ledgerdesk/ledgerdesk/internal/export"
)

// SnapshotSource hands out isolated copies of a company's books.
type SnapshotSource interface {
	Snapshot(id string) (company.Snapshot, error)
}

// Handler wires the report endpoints.
type Handler struct {
	logger    *slog.Logger
	source    SnapshotSource
	validate  *validator.Validate
	rateLimit func(http.Handler) http.Handler
	builds    singleflight.Group
}

// NewHandler constructs the report handler. CSV exports are rate limited
// per client IP.
func NewHandler(logger *slog.Logger, source SnapshotSource) *Handler {
	return &Handler{
		logger:    logger,
		source:    source,
		validate:  validator.New(),
		rateLimit: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/{companyID}/{kind}", func(r chi.Router) {
		r.Get("/", h.handleDocument)
		r.With(h.rateLimit).Get("/csv", h.handleCSV)
	})
}

type reportQuery struct {
	From string `validate:"omitempty,datetime=2006-01-02"`
	To   string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) buildDocument(r *http.Request) (export.Document, int, error) {
	kind, err := reports.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return export.Document{}, http.StatusNotFound, err
	}

	query := reportQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := h.validate.Struct(query); err != nil {
		return export.Document{}, http.StatusBadRequest, fmt.Errorf("invalid period: %w", err)
	}
	// Zero times leave the period open on that end.
	var from, to time.Time
	if query.From != "" {
		from, _ = time.Parse("2006-01-02", query.From)
	}
	if query.To != "" {
		to, _ = time.Parse("2006-01-02", query.To)
	}

	companyID := chi.URLParam(r, "companyID")
	key := fmt.Sprintf("%s|%s|%s|%s", companyID, kind, query.From, query.To)
	value, err, _ := h.builds.Do(key, func() (any, error) {
		snap, err := h.source.Snapshot(companyID)
		if err != nil {
			return nil, err
		}
		result, err := reports.Build(kind, reports.Input{
			Ledgers:   snap.Books.Ledgers,
			Vouchers:  snap.Books.Vouchers,
			Items:     snap.Books.Items,
			TaxGroups: snap.Books.TaxGroups,
			From:      from,
			To:        to,
		})
		if err != nil {
			return nil, err
		}
		return export.NewDocument(snap.Company.Name, snap.Company.PeriodLabel, result), nil
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrDeleted) {
			return export.Document{}, http.StatusNotFound, err
		}
		return export.Document{}, http.StatusInternalServerError, err
	}
	return value.(export.Document), http.StatusOK, nil
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, status, err := h.buildDocument(r)
	if err != nil {
		h.fail(w, r, status, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := doc.WriteJSON(w); err != nil {
		h.logger.Error("write report document", slog.Any("error", err))
	}
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	doc, status, err := h.buildDocument(r)
	if err != nil {
		h.fail(w, r, status, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.csv", doc.ReportType, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, doc); err != nil {
		h.logger.Error("write report csv", slog.Any("error", err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("report request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
