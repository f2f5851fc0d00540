package company

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
	"github.com/ledgerdesk/ledgerdesk/internal/tax"
)

// Handler exposes the company workflows that feed the reporting core.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	validate *validator.Validate
}

// NewHandler constructs a company handler.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store, validate: validator.New()}
}

// MountRoutes registers company routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Put("/{companyID}", h.handleUpdate)
	r.Delete("/{companyID}", h.handleDelete)
	r.Post("/{companyID}/restore", h.handleRestore)
	r.Post("/{companyID}/books", h.handleReplaceBooks)
	r.Post("/{companyID}/add-year", h.handleAddYear)
	r.Post("/{companyID}/split-year", h.handleSplitYear)
}

type companyForm struct {
	Name        string `json:"name" validate:"required"`
	PeriodLabel string `json:"periodLabel" validate:"required"`
}

type ledgerPayload struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Side           string          `json:"side" validate:"required,oneof=Debit Credit"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Group          string          `json:"group"`
}

type linePayload struct {
	ItemID    string          `json:"itemId"`
	HSNCode   string          `json:"hsnCode"`
	Qty       decimal.Decimal `json:"qty"`
	Amount    decimal.Decimal `json:"amount"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
}

type voucherPayload struct {
	ID       string           `json:"id"`
	Type     string           `json:"type" validate:"required"`
	Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
	Amount   decimal.Decimal  `json:"amount"`
	LedgerID string           `json:"ledgerId"`
	SubTotal *decimal.Decimal `json:"subTotal"`
	TaxTotal *decimal.Decimal `json:"taxTotal"`
	Party    string           `json:"party"`
	Supply   string           `json:"supplyType" validate:"omitempty,oneof=Local Interstate"`
	GSTClass string           `json:"gstClassification" validate:"omitempty,oneof=Output Input"`
	Lines    []linePayload    `json:"lineItems"`
}

type itemPayload struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	SalePrice decimal.Decimal `json:"salePrice"`
}

type taxMasterPayload struct {
	ID   string          `json:"id"`
	Name string          `json:"name" validate:"required"`
	Rate decimal.Decimal `json:"rate"`
}

type taxGroupPayload struct {
	ID      string             `json:"id"`
	Name    string             `json:"name" validate:"required"`
	Masters []taxMasterPayload `json:"masters" validate:"dive"`
}

type booksPayload struct {
	Ledgers   []ledgerPayload   `json:"ledgers" validate:"dive"`
	Vouchers  []voucherPayload  `json:"vouchers" validate:"dive"`
	Items     []itemPayload     `json:"items" validate:"dive"`
	TaxGroups []taxGroupPayload `json:"taxGroups" validate:"dive"`
}

func (p booksPayload) toBooks() Books {
	b := Books{}
	for _, l := range p.Ledgers {
		b.Ledgers = append(b.Ledgers, books.Ledger{
			ID:             l.ID,
			Name:           l.Name,
			Side:           books.Side(l.Side),
			OpeningBalance: l.OpeningBalance,
			Group:          l.Group,
		})
	}
	for _, v := range p.Vouchers {
		date, _ := time.Parse("2006-01-02", v.Date)
		voucher := books.Voucher{
			ID:       v.ID,
			Type:     books.VoucherType(v.Type),
			Date:     date,
			Amount:   v.Amount,
			LedgerID: v.LedgerID,
			SubTotal: v.SubTotal,
			TaxTotal: v.TaxTotal,
			Party:    v.Party,
			Supply:   books.SupplyType(v.Supply),
			GSTClass: books.GSTClass(v.GSTClass),
		}
		for _, line := range v.Lines {
			voucher.Lines = append(voucher.Lines, books.LineItem{
				ItemID:    line.ItemID,
				HSNCode:   line.HSNCode,
				Qty:       line.Qty,
				Amount:    line.Amount,
				TaxAmount: line.TaxAmount,
			})
		}
		b.Vouchers = append(b.Vouchers, voucher)
	}
	for _, i := range p.Items {
		b.Items = append(b.Items, books.Item{
			ID:        i.ID,
			Name:      i.Name,
			Category:  i.Category,
			Unit:      i.Unit,
			SalePrice: i.SalePrice,
		})
	}
	for _, g := range p.TaxGroups {
		group := tax.Group{ID: g.ID, Name: g.Name}
		for _, m := range g.Masters {
			group.Masters = append(group.Masters, tax.Master{ID: m.ID, Name: m.Name, Rate: m.Rate})
		}
		b.TaxGroups = append(b.TaxGroups, group)
	}
	return b
}

func actorFrom(r *http.Request) string {
	if actor := r.Header.Get("X-Actor"); actor != "" {
		return actor
	}
	return "system"
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", slog.Any("error", err))
	}
}

func (h *Handler) storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDeleted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var form struct {
		companyForm
		Books booksPayload `json:"books"`
	}
	if !h.decode(w, r, &form) {
		return
	}
	created := h.store.Create(form.Name, form.PeriodLabel, form.Books.toBooks(), actorFrom(r))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var form companyForm
	if !h.decode(w, r, &form) {
		return
	}
	updated, err := h.store.Update(chi.URLParam(r, "companyID"), form.Name, form.PeriodLabel, actorFrom(r))
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "companyID"), actorFrom(r)); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Restore(chi.URLParam(r, "companyID"), actorFrom(r)); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleReplaceBooks(w http.ResponseWriter, r *http.Request) {
	var payload booksPayload
	if !h.decode(w, r, &payload) {
		return
	}
	if err := h.store.ReplaceBooks(chi.URLParam(r, "companyID"), payload.toBooks(), actorFrom(r)); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddYear(w http.ResponseWriter, r *http.Request) {
	var form struct {
		PeriodLabel string `json:"periodLabel" validate:"required"`
	}
	if !h.decode(w, r, &form) {
		return
	}
	updated, err := h.store.AddYear(chi.URLParam(r, "companyID"), form.PeriodLabel, actorFrom(r))
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleSplitYear(w http.ResponseWriter, r *http.Request) {
	var form struct {
		Cutoff      string `json:"cutoff" validate:"required,datetime=2006-01-02"`
		PeriodLabel string `json:"periodLabel" validate:"required"`
	}
	if !h.decode(w, r, &form) {
		return
	}
	cutoff, _ := time.Parse("2006-01-02", form.Cutoff)

	progress := make(chan ProgressEvent, 16)
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	go func() {
		for event := range progress {
			h.logger.Info("split year progress",
				slog.String("stage", event.Stage),
				slog.Int("done", event.Done),
				slog.Int("total", event.Total))
		}
	}()
	created, err := h.store.SplitYear(ctx, chi.URLParam(r, "companyID"), cutoff, form.PeriodLabel, actorFrom(r), progress)
	close(progress)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}
