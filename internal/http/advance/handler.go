package advance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/advance"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type Handler struct {
	svc *advance.Service
}

func NewHandler(svc *advance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/bulk", h.createBulk)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type createAdvanceRequest struct {
	EmployeeID  uuid.UUID       `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Month       period.Month    `json:"month"`
	Description string          `json:"description"`
}

func (req createAdvanceRequest) params() (advance.CreateParams, error) {
	p := advance.CreateParams{
		EmployeeID:  req.EmployeeID,
		Amount:      req.Amount,
		Month:       req.Month,
		Description: req.Description,
	}

	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return p, errors.New("date must be YYYY-MM-DD")
		}

		p.Date = d
	}

	return p, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := req.params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(a))
}

// createBulk registers every advance of the body or none of them.
func (h *Handler) createBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []createAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]advance.CreateParams, 0, len(reqs))

	for _, req := range reqs {
		p, err := req.params()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		params = append(params, p)
	}

	created, err := h.svc.CreateBatch(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponseList(created))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := advance.ListFilter{}

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

	as, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(as))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(a))
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

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, advance.ErrNotFound):
		http.Error(w, "advance not found", http.StatusNotFound)
	case errors.Is(err, advance.ErrInvalidAmount),
		errors.Is(err, advance.ErrMissingEmployee),
		errors.Is(err, advance.ErrMissingMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("advance request failed", "error", err)
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
