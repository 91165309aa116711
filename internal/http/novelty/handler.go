package novelty

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type Handler struct {
	svc *novelty.Service
}

func NewHandler(svc *novelty.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/types", h.types)
	r.Post("/recurring/apply", h.applyRecurring)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

var errInvalidType = errors.New("invalid novelty type")

// parseType accepts either the type code or its Spanish label.
func parseType(s string) (novelty.Type, error) {
	t, ok := novelty.ParseType(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", errInvalidType, s)
	}

	return t, nil
}

type createNoveltyRequest struct {
	EmployeeID  uuid.UUID       `json:"employee_id"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Recurring   bool            `json:"recurring"`
	StartMonth  period.Month    `json:"start_month"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createNoveltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	typ, err := parseType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	n, err := h.svc.Create(r.Context(), novelty.CreateParams{
		EmployeeID:  req.EmployeeID,
		Type:        typ,
		Date:        date,
		Quantity:    typ.Quantity(req.Quantity),
		Description: req.Description,
		Recurring:   req.Recurring,
		StartMonth:  req.StartMonth,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(n))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := novelty.ListFilter{}

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		filter.Month = &m
	}

	if s := r.URL.Query().Get("employee_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid employee_id", http.StatusBadRequest)
			return
		}

		filter.EmployeeID = &id
	}

	ns, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(ns))
}

func (h *Handler) types(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, typeCatalog())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(n))
}

type updateNoveltyRequest struct {
	Type        *string          `json:"type,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Description *string          `json:"description,omitempty"`
	Recurring   *bool            `json:"recurring,omitempty"`
	StartMonth  *period.Month    `json:"start_month,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateNoveltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Type != nil {
		typ, err := parseType(*req.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		n.Type = typ
	}

	if req.Date != nil {
		d, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		n.Date = d
	}

	// The quantity always follows the unit of the (possibly new) type.
	value := n.Quantity.Value()
	if req.Quantity != nil {
		value = *req.Quantity
	}

	n.Quantity = n.Type.Quantity(value)

	if req.Description != nil {
		n.Description = *req.Description
	}

	if req.Recurring != nil {
		n.Recurring = *req.Recurring
	}

	if req.StartMonth != nil {
		n.StartMonth = *req.StartMonth
	}

	if err := h.svc.Update(r.Context(), n); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type applyRecurringResponse struct {
	Month   period.Month      `json:"month"`
	Created int               `json:"created"`
	Items   []noveltyResponse `json:"items"`
}

func (h *Handler) applyRecurring(w http.ResponseWriter, r *http.Request) {
	month := period.Current()

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		month = m
	}

	created, err := h.svc.ApplyRecurring(r.Context(), month)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, applyRecurringResponse{
		Month:   month,
		Created: len(created),
		Items:   toResponseList(created),
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, novelty.ErrNotFound):
		http.Error(w, "novelty not found", http.StatusNotFound)
	case errors.Is(err, novelty.ErrUnknownType),
		errors.Is(err, novelty.ErrUnitMismatch),
		errors.Is(err, novelty.ErrNegativeQuantity),
		errors.Is(err, novelty.ErrMissingEmployee),
		errors.Is(err, novelty.ErrMissingDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("novelty request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
