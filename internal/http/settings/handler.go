package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
	r.Post("/reset", h.reset)
}

type ratesPayload struct {
	Health             decimal.Decimal `json:"health"`
	Pension            decimal.Decimal `json:"pension"`
	Solidarity         decimal.Decimal `json:"solidarity"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MinimumSalary      decimal.Decimal `json:"minimum_salary"`
	OrdinaryHour       decimal.Decimal `json:"ordinary_hour"`
	OvertimeHour       decimal.Decimal `json:"overtime_hour"`
	NightSurcharge     decimal.Decimal `json:"night_surcharge"`
	HolidayDay         decimal.Decimal `json:"holiday_day"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

func toPayload(r settings.Rates) ratesPayload {
	return ratesPayload{
		Health:             r.Health,
		Pension:            r.Pension,
		Solidarity:         r.Solidarity,
		TransportAllowance: r.TransportAllowance,
		MinimumSalary:      r.MinimumSalary,
		OrdinaryHour:       r.OrdinaryHour,
		OvertimeHour:       r.OvertimeHour,
		NightSurcharge:     r.NightSurcharge,
		HolidayDay:         r.HolidayDay,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (p ratesPayload) rates() settings.Rates {
	return settings.Rates{
		Health:             p.Health,
		Pension:            p.Pension,
		Solidarity:         p.Solidarity,
		TransportAllowance: p.TransportAllowance,
		MinimumSalary:      p.MinimumSalary,
		OrdinaryHour:       p.OrdinaryHour,
		OvertimeHour:       p.OvertimeHour,
		NightSurcharge:     p.NightSurcharge,
		HolidayDay:         p.HolidayDay,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPayload(rates))
}

// update replaces the whole configuration. Fields left out of the body
// keep their current value.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	current, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	req := toPayload(current)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Update(r.Context(), req.rates())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPayload(saved))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.Reset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPayload(rates))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, settings.ErrInvalidRate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Error("settings request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
