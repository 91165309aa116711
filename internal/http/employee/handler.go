package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/employee"
)

type Handler struct {
	svc *employee.Service
}

func NewHandler(svc *employee.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createEmployeeRequest struct {
	Name         string                `json:"name"`
	Cedula       string                `json:"cedula"`
	ContractType employee.ContractType `json:"contract_type"`
	Salary       decimal.Decimal       `json:"salary"`
	CreatedDate  string                `json:"created_date"`
	DateOfBirth  string                `json:"date_of_birth"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	EPS          string                `json:"eps"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.DateOnly, s)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdDate, err := parseDate(req.CreatedDate)
	if err != nil {
		http.Error(w, "created_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	params := employee.CreateParams{
		Name:         req.Name,
		Cedula:       req.Cedula,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		CreatedDate:  createdDate,
		Phone:        req.Phone,
		Email:        req.Email,
		EPS:          req.EPS,
	}

	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			http.Error(w, "date_of_birth must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params.DateOfBirth = &dob
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(es))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

type updateEmployeeRequest struct {
	Name         *string                `json:"name,omitempty"`
	Cedula       *string                `json:"cedula,omitempty"`
	ContractType *employee.ContractType `json:"contract_type,omitempty"`
	Salary       *decimal.Decimal       `json:"salary,omitempty"`
	CreatedDate  *string                `json:"created_date,omitempty"`
	WorkedDays   *int                   `json:"worked_days,omitempty"`
	Phone        *string                `json:"phone,omitempty"`
	Email        *string                `json:"email,omitempty"`
	EPS          *string                `json:"eps,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Name != nil {
		e.Name = *req.Name
	}

	if req.Cedula != nil {
		e.Cedula = *req.Cedula
	}

	if req.ContractType != nil {
		e.ContractType = *req.ContractType
	}

	if req.Salary != nil {
		e.Salary = *req.Salary
	}

	if req.CreatedDate != nil {
		d, err := parseDate(*req.CreatedDate)
		if err != nil {
			http.Error(w, "created_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e.CreatedDate = d
	}

	if req.WorkedDays != nil {
		e.WorkedDays = *req.WorkedDays
	}

	if req.Phone != nil {
		e.Phone = *req.Phone
	}

	if req.Email != nil {
		e.Email = *req.Email
	}

	if req.EPS != nil {
		e.EPS = *req.EPS
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
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
	case errors.Is(err, employee.ErrNotFound):
		http.Error(w, "employee not found", http.StatusNotFound)
	case errors.Is(err, employee.ErrDuplicateCedula):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, employee.ErrMissingName),
		errors.Is(err, employee.ErrInvalidContractType),
		errors.Is(err, employee.ErrNegativeSalary):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("employee request failed", "error", err)
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
