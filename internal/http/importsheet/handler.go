package importsheet

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/importer"
	"github.com/MrJamesThe3rd/nomina/internal/importer/sheet"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type Handler struct {
	svc      *importer.Service
	maxBytes int64
}

func NewHandler(svc *importer.Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}

	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/novelties", h.importNovelties)
	r.Post("/advances", h.importAdvances)
}

type createdResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Kind         string          `json:"kind"`
	Label        string          `json:"label"`
	Date         string          `json:"date"`
	Month        period.Month    `json:"month"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type importResponse struct {
	Imported int                `json:"imported"`
	Created  []createdResponse  `json:"created"`
	Warnings []importer.Warning `json:"warnings"`
}

func (h *Handler) importNovelties(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.svc.ImportNovelties(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := importResponse{
		Imported: len(res.Created),
		Created:  make([]createdResponse, len(res.Created)),
		Warnings: nonNil(res.Warnings),
	}

	for i, n := range res.Created {
		resp.Created[i] = createdResponse{
			ID:           n.ID,
			EmployeeID:   n.EmployeeID,
			EmployeeName: n.EmployeeName,
			Kind:         string(n.Type),
			Label:        n.Type.Label(),
			Date:         n.Date.Format(time.DateOnly),
			Month:        n.Month(),
			Quantity:     n.Quantity.Value(),
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) importAdvances(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.svc.ImportAdvances(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := importResponse{
		Imported: len(res.Created),
		Created:  make([]createdResponse, len(res.Created)),
		Warnings: nonNil(res.Warnings),
	}

	for i, a := range res.Created {
		resp.Created[i] = createdResponse{
			ID:           a.ID,
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			Kind:         "ADVANCE",
			Label:        "Adelanto",
			Date:         a.Date.Format(time.DateOnly),
			Month:        a.Month,
			Quantity:     a.Amount,
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) formFile(w http.ResponseWriter, r *http.Request) (io.ReadCloser, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}

	return file, true
}

func nonNil(ws []importer.Warning) []importer.Warning {
	if ws == nil {
		return []importer.Warning{}
	}

	return ws
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, sheet.ErrUnknownLayout) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Error("import failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
