package payroll

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/nomina/internal/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/report"
)

type Handler struct {
	svc *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.calculate)
	r.Get("/report.txt", h.text)
	r.Get("/report.csv", h.csv)
	r.Get("/payslips.pdf", h.payslips)
}

// run calculates the month given by ?month=, defaulting to the current one.
// It writes the error response itself and returns nil when it fails.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) *payroll.Run {
	month := period.Current()

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		month = m
	}

	run, err := h.svc.Run(r.Context(), month)
	if err != nil {
		slog.Error("payroll run failed", "month", month.String(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil
	}

	return run
}

// processedOn reads ?date= for report headers so that a past report can be
// regenerated byte for byte.
func processedOn(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return time.Now(), nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}

	return t, nil
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	run := h.run(w, r)
	if run == nil {
		return
	}

	writeJSON(w, http.StatusOK, toRunResponse(run))
}

func (h *Handler) text(w http.ResponseWriter, r *http.Request) {
	date, err := processedOn(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	run := h.run(w, r)
	if run == nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(run, "txt"))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(report.Text(run, date))); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	run := h.run(w, r)
	if run == nil {
		return
	}

	var buf bytes.Buffer
	if err := report.CSV(&buf, run); err != nil {
		slog.Error("failed to build csv report", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(run, "csv"))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

func (h *Handler) payslips(w http.ResponseWriter, r *http.Request) {
	date, err := processedOn(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	run := h.run(w, r)
	if run == nil {
		return
	}

	var buf bytes.Buffer
	if err := report.Payslips(&buf, run, date); err != nil {
		slog.Error("failed to build payslips", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(run, "pdf"))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write payslips", "error", err)
	}
}

func attachment(run *payroll.Run, ext string) string {
	return fmt.Sprintf(`attachment; filename="nomina-%s.%s"`, run.Month, ext)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
